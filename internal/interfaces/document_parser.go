package interfaces

import "context"

// DocumentParser converts an uploaded binary into text segments (one per page
// for PDFs). Failures surface as models.ErrParse; a rejected document never
// produces a partial index.
type DocumentParser interface {
	// Parse extracts text segments from raw document bytes
	Parse(ctx context.Context, data []byte) ([]string, error)

	// Supports reports whether the parser handles the given content type or
	// file name
	Supports(name string) bool
}
