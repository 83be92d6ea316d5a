package statio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kshedden/datareader"

	"github.com/wdm0006/parquetry/pkg/table"
)

func TestFromSeries(t *testing.T) {
	age, err := datareader.NewSeries("age", []int8{30, 40, 0}, []bool{false, false, true})
	if err != nil {
		t.Fatal(err)
	}
	income, err := datareader.NewSeries("income", []float64{1.5, 2.5, 3.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	city, err := datareader.NewSeries("city", []string{"oslo", "lima", "pune"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	f, err := FromSeries([]*datareader.Series{age, income, city})
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", f.Rows())
	}

	col, _ := f.ColumnByName("age")
	if col.Kind() != table.KindInt {
		t.Fatalf("age kind = %v", col.Kind())
	}
	ic := col.(*table.IntColumn)
	if v, ok := ic.Get(0); !ok || v != 30 {
		t.Fatalf("age[0] = %v,%v", v, ok)
	}
	if !ic.IsNull(2) {
		t.Fatal("missing value should be null")
	}

	colC, _ := f.ColumnByName("city")
	if v, _ := colC.(*table.StringColumn).Get(1); v != "lima" {
		t.Fatalf("city[1] = %q", v)
	}
}

func TestFromSeriesEmpty(t *testing.T) {
	f, err := FromSeries(nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 0 || f.Cols() != 0 {
		t.Fatalf("expected empty frame, got %dx%d", f.Rows(), f.Cols())
	}
}

func TestReadAllRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.dta")
	if err := os.WriteFile(path, []byte("this is not a stata file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadAll(path); err == nil {
		t.Fatal("expected error for non-dta content")
	}
}
