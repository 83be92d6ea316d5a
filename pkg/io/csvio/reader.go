package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	iox "github.com/wdm0006/parquetry/pkg/io/ioutils"
	"github.com/wdm0006/parquetry/pkg/table"
)

type ReaderOptions struct {
	HasHeader  bool
	Delimiter  rune // 0 = sniff, default ','
	SampleRows int  // rows sampled for inference; default 100
}

// Reader reads a CSV file into a Frame, inferring column kinds from a
// sample of leading rows.
type Reader struct {
	rc     io.ReadCloser
	r      *csv.Reader
	opt    ReaderOptions
	buf    [][]string // records consumed during inference
	schema table.Schema

	// repair counters for ragged records
	shortRecords int
	longRecords  int
}

// Open opens a CSV file (gzip-transparent) and returns a Reader.
func Open(path string, opt ReaderOptions) (*Reader, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	rr := csv.NewReader(rc)
	rr.FieldsPerRecord = -1
	if opt.Delimiter == 0 {
		if d, lazy, err := sniffDelimiterAndQuotes(path); err == nil && d != 0 {
			rr.Comma = d
			rr.LazyQuotes = lazy
		}
	} else {
		rr.Comma = opt.Delimiter
	}
	return &Reader{rc: rc, r: rr, opt: opt}, nil
}

func (r *Reader) Close() error { return r.rc.Close() }

// InferSchema reads the header (if present) and samples rows to determine
// column kinds. Sampled rows are retained for the subsequent read.
func (r *Reader) InferSchema() (table.Schema, error) {
	rec, err := r.r.Read()
	if err != nil {
		return table.Schema{}, err
	}

	var names []string
	if r.opt.HasHeader {
		names = make([]string, len(rec))
		for i := range rec {
			names[i] = strings.ToValidUTF8(strings.TrimSpace(rec[i]), "?")
		}
		// strip BOM on the first header cell if present
		if len(names) > 0 {
			names[0] = strings.TrimPrefix(names[0], "﻿")
		}
		rec, err = r.r.Read()
		if err == io.EOF {
			r.schema = table.SchemaFor(names, nil)
			return r.schema, nil
		}
		if err != nil {
			return table.Schema{}, err
		}
	} else {
		names = make([]string, len(rec))
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}

	max := r.opt.SampleRows
	if max <= 0 {
		max = 100
	}
	sample := [][]string{cloneRecord(rec)}
	for i := 1; i < max; i++ {
		rr, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table.Schema{}, err
		}
		sample = append(sample, cloneRecord(rr))
	}

	r.buf = sample
	r.schema = table.SchemaFor(names, table.InferKinds(sample))
	return r.schema, nil
}

func (r *Reader) Schema() table.Schema { return r.schema }

// ReadAll loads the rest of the CSV into a Frame, starting with the rows
// buffered during inference.
func (r *Reader) ReadAll() (*table.Frame, error) {
	if len(r.schema.Columns) == 0 {
		if _, err := r.InferSchema(); err != nil {
			return nil, err
		}
	}
	f := table.NewFrame(r.schema)
	for _, rec := range r.buf {
		r.countRagged(rec)
		table.AppendRecord(f, rec)
	}
	r.buf = nil
	for {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read: %w", err)
		}
		r.countRagged(rec)
		table.AppendRecord(f, rec)
	}
	return f, nil
}

func (r *Reader) countRagged(rec []string) {
	switch n := len(r.schema.Columns); {
	case len(rec) < n:
		r.shortRecords++
	case len(rec) > n:
		r.longRecords++
	}
}

// Warnings returns a summary of record-length repairs made during the
// read, or "" when every record matched the schema width.
func (r *Reader) Warnings() string {
	if r.shortRecords == 0 && r.longRecords == 0 {
		return ""
	}
	var parts []string
	if r.shortRecords > 0 {
		parts = append(parts, fmt.Sprintf("short_records=%d", r.shortRecords))
	}
	if r.longRecords > 0 {
		parts = append(parts, fmt.Sprintf("long_records=%d", r.longRecords))
	}
	return strings.Join(parts, ", ")
}

func cloneRecord(rec []string) []string {
	out := make([]string, len(rec))
	copy(out, rec)
	return out
}

func sniffDelimiterAndQuotes(path string) (rune, bool, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return 0, false, err
	}
	defer func() { _ = rc.Close() }()
	br := bufio.NewReader(rc)
	sample, _ := br.Peek(4096)
	if len(sample) == 0 {
		return ',', false, nil
	}
	candidates := []byte{',', '\t', ';', '|'}
	best := byte(',')
	bestCount := -1
	for _, c := range candidates {
		cnt := 0
		for _, b := range sample {
			if b == c {
				cnt++
			}
		}
		if cnt > bestCount {
			bestCount = cnt
			best = c
		}
	}
	quoteCount := 0
	for _, b := range sample {
		if b == '"' {
			quoteCount++
		}
	}
	return rune(best), quoteCount > 0, nil
}
