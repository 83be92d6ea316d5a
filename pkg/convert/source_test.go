package convert

import "testing"

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"data.csv", FormatCSV},
		{"DATA.CSV", FormatCSV},
		{"dir/archive.csv.gz", FormatCSV},
		{"book.xlsx", FormatXLSX},
		{"Book.XLSX", FormatXLSX},
		{"survey.dta", FormatDTA},
		{"notes.txt", FormatUnknown},
		{"archive.gz", FormatUnknown},
		{"csv", FormatUnknown},
	}
	for _, c := range cases {
		if got := DetectFormat(c.path); got != c.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	cases := []struct {
		rel  string
		want string
	}{
		{"a.csv", "a"},
		{"sub/b.csv.gz", "b"},
		{"sub/C.XLSX", "C"},
		{"deep/nested/survey.dta", "survey"},
	}
	for _, c := range cases {
		s := SourceFile{Rel: c.rel}
		if got := s.baseName(); got != c.want {
			t.Errorf("baseName(%q) = %q, want %q", c.rel, got, c.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if FormatCSV.String() != "csv" || FormatUnknown.String() != "unknown" {
		t.Fatal("unexpected format names")
	}
}
