package chunker

import (
	"strings"
	"testing"

	"github.com/rcastellano/ava/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildText(sentences int) string {
	var b strings.Builder
	for i := 0; i < sentences; i++ {
		b.WriteString("The quick brown fox jumps over the lazy dog near the riverbank. ")
	}
	return b.String()
}

func TestSplit_ShortTextReturnsSingleChunk(t *testing.T) {
	splitter := NewSplitter(nil)

	doc := models.Document{RawText: "A short note.", SourceID: "doc-1", Title: "Note"}
	chunks, err := splitter.Split(doc, 512, 50)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	assert.Equal(t, "A short note.", chunks[0].Text)
	assert.Equal(t, "doc-1", chunks[0].SourceID)
	assert.Equal(t, 0, chunks[0].Position)
	assert.Equal(t, "Note", chunks[0].Title)
}

func TestSplit_EmptyTextReturnsNoChunks(t *testing.T) {
	splitter := NewSplitter(nil)

	chunks, err := splitter.Split(models.Document{RawText: "   \n  "}, 512, 50)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplit_OverlapMustBeSmallerThanSize(t *testing.T) {
	splitter := NewSplitter(nil)

	_, err := splitter.Split(models.Document{RawText: "text"}, 100, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = splitter.Split(models.Document{RawText: "text"}, 100, 150)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = splitter.Split(models.Document{RawText: "text"}, 0, 0)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = splitter.Split(models.Document{RawText: "text"}, 100, -1)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSplit_ChunksRespectSizeLimit(t *testing.T) {
	splitter := NewSplitter(nil)
	counter := NewTokenCounter()

	doc := models.Document{RawText: buildText(60), SourceID: "doc-2"}
	chunks, err := splitter.Split(doc, 128, 20)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		assert.LessOrEqual(t, counter.Count(chunk.Text), 128, "chunk %d exceeds size limit", i)
		assert.Equal(t, i, chunk.Position)
		assert.Equal(t, "doc-2", chunk.SourceID)
	}
}

func TestSplit_ConsecutiveChunksOverlap(t *testing.T) {
	splitter := NewSplitter(nil)
	counter := NewTokenCounter()

	doc := models.Document{RawText: buildText(60), SourceID: "doc-3"}
	chunks, err := splitter.Split(doc, 128, 20)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		shared := sharedBoundary(chunks[i-1].Text, chunks[i].Text)
		require.NotEmpty(t, shared, "chunks %d and %d share no boundary text", i-1, i)
		assert.GreaterOrEqual(t, counter.Count(shared), 20,
			"chunks %d and %d overlap by fewer tokens than required", i-1, i)
	}
}

func TestSplit_NeverBreaksMidWord(t *testing.T) {
	splitter := NewSplitter(nil)

	original := buildText(60)
	doc := models.Document{RawText: original}
	chunks, err := splitter.Split(doc, 64, 10)
	require.NoError(t, err)

	vocabulary := make(map[string]bool)
	for _, word := range strings.Fields(original) {
		vocabulary[word] = true
	}
	for _, chunk := range chunks {
		for _, word := range strings.Fields(chunk.Text) {
			assert.True(t, vocabulary[word], "word %q does not appear in the source text", word)
		}
	}
}

func TestSplit_OversizedSentenceSplitsOnWordBoundaries(t *testing.T) {
	splitter := NewSplitter(nil)
	counter := NewTokenCounter()

	// A single run-on sentence far longer than the chunk size.
	doc := models.Document{RawText: strings.Repeat("alpha beta gamma delta epsilon ", 80)}
	chunks, err := splitter.Split(doc, 32, 8)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		assert.LessOrEqual(t, counter.Count(chunk.Text), 32, "chunk %d exceeds size limit", i)
	}
}

func TestSplit_MixedSentenceLengthsRespectSizeLimit(t *testing.T) {
	splitter := NewSplitter(nil)
	counter := NewTokenCounter()

	// Short sentences around a run-on far longer than the chunk size, so
	// word-split fragments and whole sentences pack into the same chunks.
	var b strings.Builder
	b.WriteString("Minutes were read aloud. The chair called order. ")
	b.WriteString(strings.Repeat("resolution amendment quorum motion ballot ", 40))
	b.WriteString(". Debate resumed after recess. The session adjourned late.")

	doc := models.Document{RawText: b.String(), SourceID: "doc-4"}
	chunks, err := splitter.Split(doc, 32, 8)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 2)

	for i, chunk := range chunks {
		assert.LessOrEqual(t, counter.Count(chunk.Text), 32, "chunk %d exceeds size limit", i)
		assert.Equal(t, i, chunk.Position)
	}
	for i := 1; i < len(chunks); i++ {
		assert.NotEmpty(t, sharedBoundary(chunks[i-1].Text, chunks[i].Text),
			"chunks %d and %d share no boundary text", i-1, i)
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First sentence. Second one! A third? Version 2.5 stays whole.\nNew line here")
	assert.Equal(t, []string{
		"First sentence.",
		"Second one!",
		"A third?",
		"Version 2.5 stays whole.",
		"New line here",
	}, sentences)
}

// sharedBoundary returns the longest prefix of next that is a suffix of prev
func sharedBoundary(prev, next string) string {
	for end := len(next); end > 0; end-- {
		if strings.HasSuffix(prev, next[:end]) {
			return next[:end]
		}
	}
	return ""
}
