package form

import (
	"net/url"
	"testing"
)

func TestFloat_CoercesInsteadOfFailing(t *testing.T) {
	values := url.Values{}
	values.Set("ok", "12.5")
	values.Set("padded", "  7 ")
	values.Set("negative", "-3.25")
	values.Set("junk", "abc")
	values.Set("empty", "")

	cases := []struct {
		key  string
		want float64
	}{
		{"ok", 12.5},
		{"padded", 7},
		{"negative", -3.25},
		{"junk", 0},
		{"empty", 0},
		{"missing", 0},
	}
	for _, tc := range cases {
		if got := Float(values, tc.key); got != tc.want {
			t.Fatalf("Float(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestString_TrimsWhitespace(t *testing.T) {
	values := url.Values{}
	values.Set("name", "  Acme Corp ")

	if got := String(values, "name"); got != "Acme Corp" {
		t.Fatalf("String(name) = %q", got)
	}
	if got := String(values, "missing"); got != "" {
		t.Fatalf("String(missing) = %q, want empty", got)
	}
}
