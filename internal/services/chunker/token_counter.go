package chunker

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// Use the bundled offline BPE files so counting never needs network access
func init() {
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

var (
	encodingInstance *tiktoken.Tiktoken
	encodingOnce     sync.Once
)

// TokenCounter measures text length in cl100k_base tokens, the unit the
// chunking parameters are expressed in. Falls back to whitespace word count
// if the encoding cannot load.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter returns a counter backed by the shared encoding instance
func NewTokenCounter() *TokenCounter {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encodingInstance = enc
		}
	})
	return &TokenCounter{encoding: encodingInstance}
}

// Count returns the number of tokens in text
func (c *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	if c.encoding == nil {
		return len(strings.Fields(text))
	}
	return len(c.encoding.Encode(text, nil, nil))
}
