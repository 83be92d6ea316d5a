package table

import (
	"regexp"
	"strconv"
	"strings"
)

var numRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

// InferKinds determines a column kind per position from sampled string rows.
// Columns that parse as numbers become int (when every numeric value is
// integral) or float; true/false columns become bool; anything else string.
func InferKinds(rows [][]string) []Kind {
	if len(rows) == 0 {
		return nil
	}
	ncol := len(rows[0])
	kinds := make([]Kind, ncol)
	for c := 0; c < ncol; c++ {
		num, integer, boolean, str := 0, 0, 0, 0
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[c])
			if v == "" {
				continue
			}
			if numRe.MatchString(v) {
				num++
				if !strings.ContainsAny(v, ".eE") {
					integer++
				}
				continue
			}
			switch strings.ToLower(v) {
			case "true", "false":
				boolean++
			default:
				str++
			}
		}
		switch {
		case boolean > 0 && num == 0 && str == 0:
			kinds[c] = KindBool
		case num > str:
			if integer == num {
				kinds[c] = KindInt
			} else {
				kinds[c] = KindFloat
			}
		default:
			kinds[c] = KindString
		}
	}
	return kinds
}

// SchemaFor builds a nullable schema from column names and inferred kinds.
// Missing kinds default to string.
func SchemaFor(names []string, kinds []Kind) Schema {
	s := Schema{Columns: make([]ColumnSchema, len(names))}
	for i, name := range names {
		k := KindString
		if i < len(kinds) && kinds[i] != KindInvalid {
			k = kinds[i]
		}
		s.Columns[i] = ColumnSchema{Name: name, Type: k, Nullable: true}
	}
	return s
}

// AppendRecord appends one string record to f, parsing each field according
// to the frame's schema. Empty and unparseable fields stay null; fields past
// the schema width are ignored.
func AppendRecord(f *Frame, rec []string) {
	f.AppendNullRow()
	row := f.Rows() - 1
	for i, cs := range f.Schema().Columns {
		if i >= len(rec) {
			continue
		}
		val := strings.ToValidUTF8(strings.TrimSpace(rec[i]), "?")
		if val == "" {
			continue
		}
		switch cs.Type {
		case KindFloat:
			if x, err := strconv.ParseFloat(val, 64); err == nil {
				_ = f.SetCell(row, cs.Name, x)
			}
		case KindInt:
			if x, err := strconv.ParseInt(val, 10, 64); err == nil {
				_ = f.SetCell(row, cs.Name, x)
			}
		case KindBool:
			if x, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
				_ = f.SetCell(row, cs.Name, x)
			}
		default:
			_ = f.SetCell(row, cs.Name, val)
		}
	}
}
