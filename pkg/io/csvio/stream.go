package csvio

import (
	"io"

	"github.com/wdm0006/parquetry/pkg/table"
)

// StreamReader reads CSV into Frame chunks of up to chunkRows rows.
type StreamReader struct {
	r         *Reader
	chunkRows int
}

// NewStreamReader opens the file and infers its schema up front.
func NewStreamReader(path string, opt ReaderOptions, chunkRows int) (*StreamReader, error) {
	r, err := Open(path, opt)
	if err != nil {
		return nil, err
	}
	if _, err := r.InferSchema(); err != nil {
		_ = r.Close()
		return nil, err
	}
	if chunkRows <= 0 {
		chunkRows = 1024
	}
	return &StreamReader{r: r, chunkRows: chunkRows}, nil
}

func (s *StreamReader) Schema() table.Schema { return s.r.Schema() }

func (s *StreamReader) Close() error { return s.r.Close() }

// Warnings reports ragged-record repairs across all chunks read so far.
func (s *StreamReader) Warnings() string { return s.r.Warnings() }

// Next returns the next chunk frame, or io.EOF when the file is exhausted.
func (s *StreamReader) Next() (*table.Frame, error) {
	f := table.NewFrame(s.r.Schema())
	// drain rows buffered during inference first
	for len(s.r.buf) > 0 && f.Rows() < s.chunkRows {
		s.r.countRagged(s.r.buf[0])
		table.AppendRecord(f, s.r.buf[0])
		s.r.buf = s.r.buf[1:]
	}
	for f.Rows() < s.chunkRows {
		rec, err := s.r.r.Read()
		if err == io.EOF {
			if f.Rows() == 0 {
				return nil, io.EOF
			}
			return f, nil
		}
		if err != nil {
			return nil, err
		}
		s.r.countRagged(rec)
		table.AppendRecord(f, rec)
	}
	return f, nil
}
