package parquetio

import (
	"encoding/json"
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	pr "github.com/xitongsys/parquet-go/reader"
)

// ReadAll reads every row of a Parquet file back as maps keyed by the
// original column names. Used to verify written output; not on the
// conversion path.
func ReadAll(path string) ([]map[string]any, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fr.Close() }()
	r, err := pr.NewParquetReader(fr, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("parquet open: %w", err)
	}
	defer r.ReadStop()

	num := int(r.GetNumRows())
	rows, err := r.ReadByNumber(num)
	if err != nil {
		return nil, fmt.Errorf("parquet read: %w", err)
	}

	// The reader materializes rows as generated structs whose field names
	// are parquet-go's internal (capitalized) forms; map them back to the
	// names stored in the file footer.
	toEx := make(map[string]string)
	for _, info := range r.SchemaHandler.Infos {
		toEx[info.InName] = info.ExName
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	var raw []map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	out := make([]map[string]any, len(raw))
	for i, m := range raw {
		rec := make(map[string]any, len(m))
		for k, v := range m {
			if ex, ok := toEx[k]; ok {
				rec[ex] = v
			} else {
				rec[k] = v
			}
		}
		out[i] = rec
	}
	return out, nil
}
