// Package strings holds small string helpers shared across layers.
package strings

// Digits strips every non-digit rune. Stripping an already digits-only
// string returns it unchanged, so the operation is idempotent.
func Digits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
