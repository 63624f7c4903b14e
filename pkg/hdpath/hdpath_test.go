package hdpath

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		path string
		want HDPath
	}{
		{
			path: "m/44'/60'/160720'/0'",
			want: HDPath{Hardened(44), Hardened(60), Hardened(160720), Hardened(0)},
		},
		{
			path: "m/44'/60'/0'/0/0",
			want: HDPath{Hardened(44), Hardened(60), Hardened(0), Normal(0), Normal(0)},
		},
		{
			path: "m/0",
			want: HDPath{Normal(0)},
		},
		{
			path: "m/2147483647'",
			want: HDPath{Hardened(2147483647)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.path, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantFormat bool // ErrPathFormat vs *ChildIndexError
		segment    string
	}{
		{name: "empty string", path: "", wantFormat: true},
		{name: "missing root marker", path: "44'/60'", wantFormat: true},
		{name: "bare root", path: "m", wantFormat: true},
		{name: "root only", path: "m/", segment: ""},
		{name: "empty segment", path: "m/44'//0", segment: ""},
		{name: "trailing slash", path: "m/44'/", segment: ""},
		{name: "non-numeric segment", path: "m/44'/abc/0", segment: "abc"},
		{name: "negative index", path: "m/-1", segment: "-1"},
		{name: "index at hardened offset", path: "m/2147483648", segment: "2147483648"},
		{name: "lone hardening marker", path: "m/'", segment: "'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.path)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.path)
			}
			if tt.wantFormat {
				if !errors.Is(err, ErrPathFormat) {
					t.Errorf("Parse(%q) error = %v, want ErrPathFormat", tt.path, err)
				}
				return
			}
			var cie *ChildIndexError
			if !errors.As(err, &cie) {
				t.Fatalf("Parse(%q) error = %v, want *ChildIndexError", tt.path, err)
			}
			if cie.Segment != tt.segment {
				t.Errorf("offending segment = %q, want %q", cie.Segment, tt.segment)
			}
			if cie.Unwrap() == nil {
				t.Error("ChildIndexError should wrap the underlying parse failure")
			}
		})
	}
}

func TestChildNumber_Raw(t *testing.T) {
	if got := Normal(44).Raw(); got != 44 {
		t.Errorf("Normal(44).Raw() = %d, want 44", got)
	}
	if got := Hardened(44).Raw(); got != 44+HardenedOffset {
		t.Errorf("Hardened(44).Raw() = %d, want %d", got, 44+HardenedOffset)
	}
}

func TestHDPath_String(t *testing.T) {
	paths := []string{
		"m/44'/60'/160720'/0'",
		"m/44'/60'/0'/0/0",
		"m/0",
	}
	for _, p := range paths {
		parsed, err := Parse(p)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", p, err)
		}
		if got := parsed.String(); got != p {
			t.Errorf("String() = %q, want %q", got, p)
		}
	}
}
