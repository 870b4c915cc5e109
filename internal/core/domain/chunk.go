package domain

import (
	"errors"
	"fmt"
)

// Chunk is one window of document text with page provenance. Size is the
// rune count of Text, the unit shared with SelectionBudget.
type Chunk struct {
	ID          string `json:"id"`
	Index       int    `json:"index"`
	SourcePages []int  `json:"source_pages"`
	Text        string `json:"text"`
	Size        int    `json:"size"`
}

// ChunkConfig controls the sliding window: Size runes per chunk, Overlap
// runes shared between consecutive chunks.
type ChunkConfig struct {
	Size    int `json:"size"`
	Overlap int `json:"overlap"`
}

func (c ChunkConfig) Validate() error {
	if c.Size <= 0 {
		return WrapError(
			ErrInvalidConfiguration,
			"validate chunk config",
			fmt.Errorf("chunk size %d, want > 0", c.Size),
		)
	}
	if c.Overlap < 0 {
		return WrapError(
			ErrInvalidConfiguration,
			"validate chunk config",
			fmt.Errorf("overlap %d, want >= 0", c.Overlap),
		)
	}
	if c.Overlap >= c.Size {
		return WrapError(
			ErrInvalidConfiguration,
			"validate chunk config",
			fmt.Errorf("overlap %d, want < chunk size %d", c.Overlap, c.Size),
		)
	}
	return nil
}

// Key identifies this configuration inside cache keys.
func (c ChunkConfig) Key() string {
	return fmt.Sprintf("%d-%d", c.Size, c.Overlap)
}

// SelectionBudget caps the total size of selected chunks, in runes.
type SelectionBudget struct {
	MaxContextSize int `json:"max_context_size"`
}

func (b SelectionBudget) Validate() error {
	if b.MaxContextSize <= 0 {
		return WrapError(
			ErrInvalidConfiguration,
			"validate selection budget",
			errors.New("max context size must be positive"),
		)
	}
	return nil
}
