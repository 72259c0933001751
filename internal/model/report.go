package model

// CategorizedArticle is an article mapped back from one model-returned
// index reference. Digest is taken verbatim from the model output.
type CategorizedArticle struct {
	Title  string
	Link   string
	Source string
	Digest string
}

// GroupBuckets maps every taxonomy category to its articles. Every
// category key is present even when its list is empty.
type GroupBuckets map[string][]CategorizedArticle

// Report is the reconciled summarization output for one run.
type Report struct {
	Summary     string
	Highlights  []string
	Correlation string
	Groups      map[string]GroupBuckets
}
