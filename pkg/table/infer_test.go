package table_test

import (
	"testing"

	"github.com/wdm0006/parquetry/pkg/table"
)

func TestInferKinds(t *testing.T) {
	rows := [][]string{
		{"1", "1.5", "true", "abc", ""},
		{"2", "2e3", "false", "def", ""},
		{"3", "7", "true", "8", ""},
	}
	kinds := table.InferKinds(rows)
	want := []table.Kind{table.KindInt, table.KindFloat, table.KindBool, table.KindString, table.KindString}
	if len(kinds) != len(want) {
		t.Fatalf("got %d kinds", len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("col %d: got %v want %v", i, kinds[i], want[i])
		}
	}
}

func TestInferKindsEmpty(t *testing.T) {
	if kinds := table.InferKinds(nil); kinds != nil {
		t.Fatalf("expected nil, got %v", kinds)
	}
}

func TestAppendRecord(t *testing.T) {
	s := table.SchemaFor([]string{"a", "b"}, []table.Kind{table.KindInt, table.KindString})
	f := table.NewFrame(s)
	table.AppendRecord(f, []string{" 42 ", "x"})
	table.AppendRecord(f, []string{"bad-int"}) // short record, unparseable int

	col, _ := f.ColumnByName("a")
	ic := col.(*table.IntColumn)
	if v, ok := ic.Get(0); !ok || v != 42 {
		t.Fatalf("got %v,%v", v, ok)
	}
	if !ic.IsNull(1) {
		t.Fatal("unparseable value should stay null")
	}
	colB, _ := f.ColumnByName("b")
	if !colB.IsNull(1) {
		t.Fatal("missing field should stay null")
	}
}
