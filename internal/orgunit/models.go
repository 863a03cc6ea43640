// Package orgunit serves the organizational unit ("SM") lookup list. The
// source collection is schemaless: it accumulated rows from several imports
// whose column names disagree on casing, so reading it means coalescing
// candidate keys rather than trusting a schema.
package orgunit

import "strconv"

// Unit is the canonical wire shape of one organizational unit.
type Unit struct {
	ID       string `json:"id"`
	SM       string `json:"sm"`
	Sector   string `json:"sector"`
	Seccion  string `json:"seccion"`
	Fraccion string `json:"fraccion"`
}

// Document is one raw row from the units collection: an identifier plus a
// loose bag of fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Key priority per attribute, first non-empty wins. Order matters: the
// lowercase keys come from the most recent import and are most trustworthy.
var (
	smKeys       = []string{"SM", "sm", "Sm"}
	sectorKeys   = []string{"sector", "Sector", "SECTOR"}
	seccionKeys  = []string{"seccion", "Seccion", "SECCION"}
	fraccionKeys = []string{"fraccion", "FRACCION"}
)

// Resolve coalesces a raw document into a Unit.
func Resolve(doc Document) Unit {
	return Unit{
		ID:       doc.ID,
		SM:       coalesce(doc.Fields, smKeys),
		Sector:   coalesce(doc.Fields, sectorKeys),
		Seccion:  coalesce(doc.Fields, seccionKeys),
		Fraccion: coalesce(doc.Fields, fraccionKeys),
	}
}

// ResolveAll resolves every document and drops entries whose display name
// comes out empty; those rows are import debris, not selectable units.
func ResolveAll(docs []Document) []Unit {
	units := make([]Unit, 0, len(docs))
	for _, doc := range docs {
		unit := Resolve(doc)
		if unit.SM == "" {
			continue
		}
		units = append(units, unit)
	}
	return units
}

func coalesce(fields map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := fields[key]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringify normalizes the value types JSON decoding produces. Numeric
// sector/section values show up in older imports.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
