package format

import (
	"strings"
	"testing"
)

func TestMaskToken(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"typical", "123456789:AAFakeFakeFakeFakeFake", "123456789:...eFake"},
		{"short", "abc123", "******"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaskToken(tc.in); got != tc.want {
				t.Fatalf("MaskToken(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMaskTokenNeverLeaksMiddle(t *testing.T) {
	token := "123456789:AAE-secret-middle-part-xyzzy"
	masked := MaskToken(token)
	if strings.Contains(masked, "secret-middle") {
		t.Fatalf("masked token %q leaks the middle of %q", masked, token)
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		name string
		in   uint64
		want string
	}{
		{"minutes", 90, "0h1m"},
		{"hours", 3*3600 + 600, "3h10m"},
		{"days", 2*86400 + 5*3600, "2d5h"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatUptime(tc.in); got != tc.want {
				t.Fatalf("FormatUptime(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	giB := uint64(1024 * 1024 * 1024)
	cases := []struct {
		name  string
		input uint64
		want  string
	}{
		{"zero", 0, "0G"},
		{"oneGiB", giB, "1G"},
		{"oneTiB", giB * 1024, "1T"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatBytes(tc.input); got != tc.want {
				t.Fatalf("FormatBytes(%d) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter", "https://a.example", 30, "https://a.example"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 5, "abcde..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.max); got != tc.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}
