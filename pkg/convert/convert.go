package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wdm0006/parquetry/pkg/io/csvio"
	"github.com/wdm0006/parquetry/pkg/io/parquetio"
	"github.com/wdm0006/parquetry/pkg/io/statio"
	"github.com/wdm0006/parquetry/pkg/io/xlsxio"
	"github.com/wdm0006/parquetry/pkg/table"
)

const (
	// DefaultChunkThreshold is the source size at which CSV conversion
	// switches to chunked part files.
	DefaultChunkThreshold = 50 << 20
	// DefaultChunkRows is the row count per part file on the chunked path.
	DefaultChunkRows = 200_000
)

// Options is the run context threaded through conversion calls.
type Options struct {
	OutputRoot     string
	ChunkThreshold int64 // bytes; CSVs at or above this size are chunked
	ChunkRows      int
	Sheet          int  // xlsx sheet index
	NoHeader       bool // treat CSV/XLSX first row as data, not column names
}

func (o Options) withDefaults() Options {
	if o.ChunkThreshold <= 0 {
		o.ChunkThreshold = DefaultChunkThreshold
	}
	if o.ChunkRows <= 0 {
		o.ChunkRows = DefaultChunkRows
	}
	return o
}

// Convert converts one source file into Parquet at the mirrored location
// under opt.OutputRoot, returning the paths written. Errors creating
// directories under the output root are fatal; read and write failures on
// the file itself are not.
func Convert(src SourceFile, opt Options) ([]string, error) {
	opt = opt.withDefaults()

	outDir := filepath.Join(opt.OutputRoot, filepath.Dir(src.Rel))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, Fatal(fmt.Errorf("create output dir %q: %w", outDir, err))
	}

	if src.Format == FormatCSV && src.Size >= opt.ChunkThreshold {
		return convertCSVChunked(src, outDir, opt)
	}

	frame, err := readFrame(src, opt)
	if err != nil {
		return nil, err
	}
	out := filepath.Join(outDir, src.baseName()+".parquet")
	if err := parquetio.WriteAll(out, frame); err != nil {
		return nil, fmt.Errorf("write %q: %w", out, err)
	}
	return []string{out}, nil
}

func readFrame(src SourceFile, opt Options) (*table.Frame, error) {
	switch src.Format {
	case FormatCSV:
		r, err := csvio.Open(src.Path, csvio.ReaderOptions{HasHeader: !opt.NoHeader})
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", src.Path, err)
		}
		defer func() { _ = r.Close() }()
		f, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", src.Path, err)
		}
		if w := r.Warnings(); w != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", src.Path, w)
		}
		return f, nil
	case FormatXLSX:
		f, err := xlsxio.ReadAll(src.Path, xlsxio.ReaderOptions{Sheet: opt.Sheet, HasHeader: !opt.NoHeader})
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", src.Path, err)
		}
		return f, nil
	case FormatDTA:
		f, err := statio.ReadAll(src.Path)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", src.Path, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%q: unsupported format", src.Path)
	}
}

// convertCSVChunked streams the CSV in row-count chunks, writing each as
// part-NNNNN.parquet inside a directory named after the source file.
func convertCSVChunked(src SourceFile, outDir string, opt Options) ([]string, error) {
	partDir := filepath.Join(outDir, src.baseName())
	if err := os.MkdirAll(partDir, 0o755); err != nil {
		return nil, Fatal(fmt.Errorf("create output dir %q: %w", partDir, err))
	}

	sr, err := csvio.NewStreamReader(src.Path, csvio.ReaderOptions{HasHeader: !opt.NoHeader}, opt.ChunkRows)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", src.Path, err)
	}
	defer func() { _ = sr.Close() }()

	outs, err := writeParts(sr, partDir)
	if err != nil {
		return outs, fmt.Errorf("chunk %q: %w", src.Path, err)
	}
	if w := sr.Warnings(); w != "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n", src.Path, w)
	}
	return outs, nil
}

// writeParts drains a chunk source into sequentially numbered part files.
// A source with no data rows still yields one empty part, so every
// conversion leaves at least one Parquet file behind.
func writeParts(src table.ChunkSource, partDir string) ([]string, error) {
	var outs []string
	for part := 0; ; part++ {
		frame, err := src.Next()
		if err == io.EOF {
			if len(outs) == 0 {
				out := filepath.Join(partDir, "part-00000.parquet")
				if err := parquetio.WriteAll(out, table.NewFrame(src.Schema())); err != nil {
					return outs, err
				}
				outs = append(outs, out)
			}
			return outs, nil
		}
		if err != nil {
			return outs, err
		}
		out := filepath.Join(partDir, fmt.Sprintf("part-%05d.parquet", part))
		if err := parquetio.WriteAll(out, frame); err != nil {
			return outs, err
		}
		outs = append(outs, out)
	}
}
