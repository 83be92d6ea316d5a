package convert

import (
	"path/filepath"
	"strings"
)

// Format identifies a convertible source file kind.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatXLSX
	FormatDTA
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	case FormatDTA:
		return "dta"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file name to its Format by extension,
// case-insensitively. Gzipped CSVs (.csv.gz) count as CSV.
func DetectFormat(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".csv.gz") {
		return FormatCSV
	}
	switch filepath.Ext(name) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	case ".dta":
		return FormatDTA
	default:
		return FormatUnknown
	}
}

// SourceFile is one convertible file found under the input root.
type SourceFile struct {
	Path   string // absolute path
	Rel    string // path relative to the input root
	Format Format
	Size   int64
}

// baseName returns the file name with its recognized extension removed,
// used to derive the mirrored output name.
func (s SourceFile) baseName() string {
	name := filepath.Base(s.Rel)
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".csv.gz") {
		return name[:len(name)-len(".csv.gz")]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
