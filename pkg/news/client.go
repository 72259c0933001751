package news

import "time"

// Entry is one raw feed item before normalization. Published and Updated
// are nil when the feed did not carry a parseable timestamp.
type Entry struct {
	Title       string
	Link        string
	Description string
	Published   *time.Time
	Updated     *time.Time
}

// Fetcher retrieves the raw entries of one feed URL.
type Fetcher interface {
	Fetch(url string) ([]Entry, error)
}
