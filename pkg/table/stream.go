package table

// ChunkSource yields frames in chunks until io.EOF.
type ChunkSource interface {
	Schema() Schema
	Next() (*Frame, error)
}
