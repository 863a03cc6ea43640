// Package postal holds the static postal-code directory. The dataset is
// embedded at build time, parsed once, and never mutated afterwards.
package postal

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
)

//go:embed data/codigos_postales.json
var rawDataset []byte

// Entry maps a 5-digit postal code to one neighborhood. Several entries
// share a code, one per neighborhood.
type Entry struct {
	Code         string
	State        string
	Municipality string
	Neighborhood string
}

// Directory answers exact postal-code lookups against the embedded dataset.
type Directory struct {
	byCode map[int][]Entry
}

// record mirrors the dataset's on-disk shape, where the code is numeric.
type record struct {
	Code         int    `json:"codigo-postal"`
	State        string `json:"Estado"`
	Municipality string `json:"Municipio"`
	Neighborhood string `json:"colonia"`
}

// Load parses the embedded dataset. Called once at startup.
func Load() (*Directory, error) {
	var records []record
	if err := json.Unmarshal(rawDataset, &records); err != nil {
		return nil, fmt.Errorf("parse postal dataset: %w", err)
	}
	return fromRecords(records), nil
}

func fromRecords(records []record) *Directory {
	byCode := make(map[int][]Entry, len(records))
	for _, r := range records {
		byCode[r.Code] = append(byCode[r.Code], Entry{
			Code:         fmt.Sprintf("%05d", r.Code),
			State:        r.State,
			Municipality: r.Municipality,
			Neighborhood: r.Neighborhood,
		})
	}
	return &Directory{byCode: byCode}
}

// Lookup returns every entry matching the given 5-digit code, in dataset
// order. The dataset stores codes numerically, so the string is parsed
// before comparison; anything that is not a 5-digit number matches nothing.
func (d *Directory) Lookup(code string) []Entry {
	if len(code) != 5 {
		return nil
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return nil
	}
	entries := d.byCode[n]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Neighborhoods returns the distinct neighborhood names of entries,
// preserving first-seen order.
func Neighborhoods(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, e := range entries {
		if _, ok := seen[e.Neighborhood]; ok {
			continue
		}
		seen[e.Neighborhood] = struct{}{}
		out = append(out, e.Neighborhood)
	}
	return out
}
