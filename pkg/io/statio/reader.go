package statio

import (
	"fmt"
	"os"
	"time"

	"github.com/kshedden/datareader"

	"github.com/wdm0006/parquetry/pkg/table"
)

// ReadAll loads a Stata .dta file into a Frame. Numeric Stata types widen
// to int64/float64, value-labeled and string columns become strings, and
// date columns come through as times. Missing values stay null.
func ReadAll(path string) (*table.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rdr, err := datareader.NewStataReader(f)
	if err != nil {
		return nil, fmt.Errorf("stata open: %w", err)
	}
	series, err := rdr.Read(-1)
	if err != nil {
		return nil, fmt.Errorf("stata read: %w", err)
	}
	return FromSeries(series)
}

// FromSeries converts datareader column series into a Frame.
func FromSeries(series []*datareader.Series) (*table.Frame, error) {
	schema := table.Schema{Columns: make([]table.ColumnSchema, len(series))}
	for i, s := range series {
		k, err := kindOf(s)
		if err != nil {
			return nil, err
		}
		schema.Columns[i] = table.ColumnSchema{Name: s.Name, Type: k, Nullable: true}
	}

	f := table.NewFrame(schema)
	if len(series) == 0 {
		return f, nil
	}
	nrows := series[0].Length()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
	}
	for i, s := range series {
		name := schema.Columns[i].Name
		missing := s.Missing()
		set := func(r int, v any) {
			if missing != nil && r < len(missing) && missing[r] {
				return
			}
			_ = f.SetCell(r, name, v)
		}
		switch data := s.Data().(type) {
		case []float64:
			for r, v := range data {
				set(r, v)
			}
		case []float32:
			for r, v := range data {
				set(r, float64(v))
			}
		case []int8:
			for r, v := range data {
				set(r, int64(v))
			}
		case []int16:
			for r, v := range data {
				set(r, int64(v))
			}
		case []int32:
			for r, v := range data {
				set(r, int64(v))
			}
		case []int64:
			for r, v := range data {
				set(r, v)
			}
		case []uint8:
			for r, v := range data {
				set(r, int64(v))
			}
		case []uint16:
			for r, v := range data {
				set(r, int64(v))
			}
		case []string:
			for r, v := range data {
				set(r, v)
			}
		case []time.Time:
			for r, v := range data {
				set(r, v)
			}
		default:
			return nil, fmt.Errorf("stata column %s: unsupported type %T", name, data)
		}
	}
	return f, nil
}

func kindOf(s *datareader.Series) (table.Kind, error) {
	switch s.Data().(type) {
	case []float64, []float32:
		return table.KindFloat, nil
	case []int8, []int16, []int32, []int64, []uint8, []uint16:
		return table.KindInt, nil
	case []string:
		return table.KindString, nil
	case []time.Time:
		return table.KindTime, nil
	default:
		return table.KindInvalid, fmt.Errorf("stata column %s: unsupported type %T", s.Name, s.Data())
	}
}
