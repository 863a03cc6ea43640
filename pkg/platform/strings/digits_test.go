package strings

import "testing"

func TestDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(55) 1234-5678", "5512345678"},
		{"5512345678", "5512345678"},
		{"", ""},
		{"abc", ""},
	}
	for _, c := range cases {
		if got := Digits(c.in); got != c.want {
			t.Errorf("Digits(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDigitsIdempotent(t *testing.T) {
	once := Digits("55-12-34-56-78")
	if Digits(once) != once {
		t.Fatalf("Digits is not idempotent for %q", once)
	}
}
