package adapter

// Extractor pulls raw text out of an uploaded document. Implementations fail
// on unreadable or unsupported input; they never normalize.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}
