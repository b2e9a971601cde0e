package chunker

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rcastellano/ava/internal/models"
	"github.com/ternarybob/arbor"
)

// Splitter breaks document text into overlapping, sentence-aware chunks.
// Chunk boundaries never fall mid-word; sizes are measured in tokens.
type Splitter struct {
	counter *TokenCounter
	logger  arbor.ILogger
}

// piece is a sentence (or word-bounded fragment of an oversized sentence)
// with its token count attached so packing never re-encodes text.
type piece struct {
	text   string
	tokens int
}

func NewSplitter(logger arbor.ILogger) *Splitter {
	return &Splitter{
		counter: NewTokenCounter(),
		logger:  logger,
	}
}

// Split chunks the document into segments of at most chunkSize tokens, with
// consecutive segments sharing at least overlap tokens of trailing context.
// Text that fits within chunkSize comes back as a single chunk.
func (s *Splitter) Split(doc models.Document, chunkSize, overlap int) ([]models.Chunk, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d: %w", chunkSize, models.ErrInvalidInput)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap must not be negative, got %d: %w", overlap, models.ErrInvalidInput)
	}
	if overlap >= chunkSize {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than chunk size %d: %w", overlap, chunkSize, models.ErrInvalidInput)
	}

	text := strings.TrimSpace(doc.RawText)
	if text == "" {
		return nil, nil
	}

	if s.counter.Count(text) <= chunkSize {
		return []models.Chunk{{
			Text:     text,
			SourceID: doc.SourceID,
			Position: 0,
			Title:    doc.Title,
		}}, nil
	}

	// Oversized sentences get word-split to at most chunkSize-overlap tokens
	// so the overlap carry between chunks always fits.
	maxPiece := chunkSize - overlap
	var pieces []piece
	for _, sentence := range splitSentences(text) {
		tokens := s.counter.Count(sentence)
		if tokens <= maxPiece {
			pieces = append(pieces, piece{text: sentence, tokens: tokens})
			continue
		}
		pieces = append(pieces, s.splitWords(sentence, maxPiece)...)
	}

	var chunks []models.Chunk
	var current []piece
	currentTokens := 0

	emit := func() {
		texts := make([]string, len(current))
		for i, p := range current {
			texts[i] = p.text
		}
		chunks = append(chunks, models.Chunk{
			Text:     strings.Join(texts, " "),
			SourceID: doc.SourceID,
			Position: len(chunks),
			Title:    doc.Title,
		})
	}

	for _, p := range pieces {
		if currentTokens+p.tokens > chunkSize && len(current) > 0 {
			emit()
			current, currentTokens = s.carryTail(current, overlap, chunkSize-p.tokens)
		}
		current = append(current, p)
		currentTokens += p.tokens
	}
	if len(current) > 0 {
		emit()
	}

	if s.logger != nil {
		s.logger.Debug().
			Str("source_id", doc.SourceID).
			Int("chunks", len(chunks)).
			Int("chunk_size", chunkSize).
			Int("overlap", overlap).
			Msg("Document chunked")
	}

	return chunks, nil
}

// carryTail returns the trailing words of an emitted chunk that seed the
// next one. The carry is built word by word so it covers at least overlap
// tokens without swallowing a whole trailing piece; budget is the room the
// next piece leaves, so carry plus piece never exceeds the chunk size.
func (s *Splitter) carryTail(emitted []piece, overlap, budget int) ([]piece, int) {
	if overlap <= 0 || budget <= 0 {
		return nil, 0
	}

	var words []string
	for _, p := range emitted {
		words = append(words, strings.Fields(p.text)...)
	}

	// Measure the growing carry on its joined text, the same way emitted
	// chunks are measured.
	start := len(words)
	joined := ""
	tokens := 0
	for start > 0 && tokens < overlap {
		start--
		joined = strings.Join(words[start:], " ")
		tokens = s.counter.Count(joined)
	}

	// A heavy word at the boundary can overshoot; shed carry words from the
	// front until the next piece fits again.
	for tokens > budget && start < len(words)-1 {
		start++
		joined = strings.Join(words[start:], " ")
		tokens = s.counter.Count(joined)
	}
	if tokens > budget {
		return nil, 0
	}

	return []piece{{text: joined, tokens: tokens}}, tokens
}

// splitWords breaks an oversized sentence at word boundaries into pieces
// of at most maxTokens each. A single word heavier than maxTokens becomes
// its own piece rather than being cut mid-word.
func (s *Splitter) splitWords(sentence string, maxTokens int) []piece {
	words := strings.Fields(sentence)
	var pieces []piece
	var current []string
	currentTokens := 0

	for _, word := range words {
		tokens := s.counter.Count(word)
		if currentTokens+tokens > maxTokens && len(current) > 0 {
			joined := strings.Join(current, " ")
			pieces = append(pieces, piece{text: joined, tokens: s.counter.Count(joined)})
			current = current[:0]
			currentTokens = 0
		}
		current = append(current, word)
		currentTokens += tokens
	}
	if len(current) > 0 {
		joined := strings.Join(current, " ")
		pieces = append(pieces, piece{text: joined, tokens: s.counter.Count(joined)})
	}
	return pieces
}

// splitSentences divides text at sentence terminators and newlines. The
// terminator stays attached to its sentence.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	flush := func(end int) {
		sentence := strings.TrimSpace(string(runes[start:end]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flush(i)
			start = i + 1
			continue
		}
		if r == '.' || r == '!' || r == '?' {
			// Terminator counts only when followed by whitespace or end of
			// text, so decimals and abbreviations stay intact.
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				flush(i + 1)
			}
		}
	}
	flush(len(runes))

	return sentences
}
