// -----------------------------------------------------------------------
// PDF Parser - Extract text content from PDF documents
// Uses pdfcpu for Go-native PDF processing
// -----------------------------------------------------------------------

package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/ternarybob/arbor"
)

// PDFParser implements the DocumentParser interface using pdfcpu
type PDFParser struct {
	logger  arbor.ILogger
	tempDir string
}

// Compile-time interface assertion
var _ interfaces.DocumentParser = (*PDFParser)(nil)

// NewPDFParser creates a new PDF parser service
func NewPDFParser(logger arbor.ILogger) *PDFParser {
	// Create a temp directory for PDF processing
	tempDir := filepath.Join(os.TempDir(), "ava-pdf")
	os.MkdirAll(tempDir, 0755)

	return &PDFParser{
		logger:  logger,
		tempDir: tempDir,
	}
}

// Supports reports whether the parser handles the named file
func (p *PDFParser) Supports(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Parse extracts text from PDF bytes, one string per page in page order.
// pdfcpu works on files, so the bytes go through a temp file.
func (p *PDFParser) Parse(ctx context.Context, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty PDF payload: %w", models.ErrParse)
	}

	id := common.NewPointID()
	tempFile := filepath.Join(p.tempDir, fmt.Sprintf("extract_%s.pdf", id))
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write temp PDF file: %w", err)
	}
	defer os.Remove(tempFile)

	// Get page count using pdfcpu
	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadContextFile(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF (%v): %w", err, models.ErrParse)
	}
	pageCount := pdfCtx.PageCount

	// pdfcpu extracts page content to files rather than returning text
	outDir := filepath.Join(p.tempDir, fmt.Sprintf("pages_%s", id))
	os.MkdirAll(outDir, 0755)
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(tempFile, outDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract PDF content (%v): %w", err, models.ErrParse)
	}

	// Read extracted content files keyed by page number
	files, _ := os.ReadDir(outDir)
	pageTexts := make(map[int]string)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "Content_page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
		}
	}

	// Build pages in page order
	pages := make([]string, 0, pageCount)
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pages = append(pages, pageTexts[pageNum])
	}

	if p.logger != nil {
		p.logger.Debug().
			Int("page_count", pageCount).
			Int("bytes", len(data)).
			Msg("Extracted PDF text")
	}

	return pages, nil
}
