package xlsxio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wdm0006/parquetry/pkg/table"
)

type ReaderOptions struct {
	Sheet      int  // zero-based sheet index; default 0 (first sheet)
	HasHeader  bool
	SampleRows int // rows sampled for inference; default 100
}

// ReadAll loads one worksheet of an xlsx workbook into a Frame. Only the
// selected sheet is read; the rest of the workbook is ignored.
func ReadAll(path string, opt ReaderOptions) (*table.Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx open: %w", err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx %s: workbook has no sheets", path)
	}
	if opt.Sheet < 0 || opt.Sheet >= len(sheets) {
		return nil, fmt.Errorf("xlsx %s: sheet index %d out of range (%d sheets)", path, opt.Sheet, len(sheets))
	}
	rows, err := wb.GetRows(sheets[opt.Sheet])
	if err != nil {
		return nil, fmt.Errorf("xlsx read sheet %q: %w", sheets[opt.Sheet], err)
	}
	if len(rows) == 0 {
		return table.NewFrame(table.Schema{}), nil
	}

	var names []string
	if opt.HasHeader {
		names = headerNames(rows[0])
		rows = rows[1:]
	} else {
		names = make([]string, len(rows[0]))
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}

	max := opt.SampleRows
	if max <= 0 {
		max = 100
	}
	if max > len(rows) {
		max = len(rows)
	}
	kinds := table.InferKinds(padded(rows[:max], len(names)))

	f := table.NewFrame(table.SchemaFor(names, kinds))
	for _, rec := range rows {
		table.AppendRecord(f, rec)
	}
	return f, nil
}

func headerNames(hdr []string) []string {
	names := make([]string, len(hdr))
	for i, h := range hdr {
		h = strings.ToValidUTF8(strings.TrimSpace(h), "?")
		if h == "" {
			h = "col_" + strconv.Itoa(i)
		}
		names[i] = h
	}
	return names
}

// padded widens ragged sheet rows to ncol so inference sees aligned columns.
func padded(rows [][]string, ncol int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= ncol {
			out[i] = row[:ncol]
			continue
		}
		p := make([]string, ncol)
		copy(p, row)
		out[i] = p
	}
	return out
}
