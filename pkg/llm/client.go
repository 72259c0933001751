package llm

import "context"

// maxOutputTokens bounds the response size of a single summarization call.
const maxOutputTokens = 4096

// Ref is one article reference inside a category bucket of the model output.
// Index is the symbolic index echoed back from the prompt listing (e.g. "D1").
type Ref struct {
	Index  string `json:"index"`
	Digest string `json:"digest"`
}

// Result is the structured payload parsed from the model response.
// Groups maps group id -> category name -> references. A zero Result is the
// empty-shaped result used when summarization is skipped or fails.
type Result struct {
	Summary     string                      `json:"summary"`
	Highlights  []string                    `json:"highlights"`
	Correlation string                      `json:"correlation"`
	Groups      map[string]map[string][]Ref `json:"groups"`
}

// Summarizer performs one summarization call. No retries, no conversation
// state; a single prompt in, a parsed payload out.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (*Result, error)
}
