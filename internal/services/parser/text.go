package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
)

// TextParser handles plain-text uploads as a single-segment document
type TextParser struct{}

var _ interfaces.DocumentParser = (*TextParser)(nil)

func NewTextParser() *TextParser {
	return &TextParser{}
}

// Supports reports whether the parser handles the named file
func (p *TextParser) Supports(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md", ".text":
		return true
	}
	return false
}

// Parse returns the payload as one text segment
func (p *TextParser) Parse(ctx context.Context, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty text payload: %w", models.ErrParse)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("text payload is not valid UTF-8: %w", models.ErrParse)
	}
	return []string{string(data)}, nil
}

// Select returns the first parser that supports the named file.
func Select(name string, parsers ...interfaces.DocumentParser) (interfaces.DocumentParser, error) {
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no parser available for '%s': %w", name, models.ErrParse)
}
