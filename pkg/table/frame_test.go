package table_test

import (
	"testing"
	"time"

	"github.com/wdm0006/parquetry/pkg/table"
)

func TestFrameSetAndGet(t *testing.T) {
	s := table.Schema{Columns: []table.ColumnSchema{
		{Name: "x", Type: table.KindFloat, Nullable: true},
		{Name: "n", Type: table.KindInt, Nullable: true},
		{Name: "s", Type: table.KindString, Nullable: true},
	}}
	f := table.NewFrame(s)
	for i := 0; i < 2; i++ {
		f.AppendNullRow()
	}
	if err := f.SetCell(0, "x", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "n", int64(7)); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "s", "hi"); err != nil {
		t.Fatal(err)
	}
	// row 1 left null

	col, _ := f.ColumnByName("x")
	fx := col.(*table.FloatColumn)
	if v, ok := fx.Get(0); !ok || v != 1.5 {
		t.Fatalf("got %v,%v", v, ok)
	}
	if !fx.IsNull(1) {
		t.Fatal("row 1 should be null")
	}
	if f.Rows() != 2 || f.Cols() != 3 {
		t.Fatalf("rows=%d cols=%d", f.Rows(), f.Cols())
	}
}

func TestSetCellCoercion(t *testing.T) {
	s := table.Schema{Columns: []table.ColumnSchema{
		{Name: "i", Type: table.KindInt, Nullable: true},
		{Name: "f", Type: table.KindFloat, Nullable: true},
	}}
	f := table.NewFrame(s)
	f.AppendNullRow()
	// plain int into int64 column, int into float column
	if err := f.SetCell(0, "i", 3); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "f", 3); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "i", "nope"); err == nil {
		t.Fatal("expected type error")
	}
	if err := f.SetCell(0, "missing", 1); err == nil {
		t.Fatal("expected unknown column error")
	}
}

func TestSetCellNilLeavesNull(t *testing.T) {
	s := table.Schema{Columns: []table.ColumnSchema{{Name: "t", Type: table.KindTime, Nullable: true}}}
	f := table.NewFrame(s)
	f.AppendNullRow()
	if err := f.SetCell(0, "t", nil); err != nil {
		t.Fatal(err)
	}
	col, _ := f.ColumnByName("t")
	if !col.IsNull(0) {
		t.Fatal("cell should stay null")
	}
	if err := f.SetCell(0, "t", time.Now()); err != nil {
		t.Fatal(err)
	}
	if col.IsNull(0) {
		t.Fatal("cell should be set")
	}
}
