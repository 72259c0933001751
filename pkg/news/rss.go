package news

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSFetcher fetches and parses RSS/Atom feeds.
type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher() *RSSFetcher {
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: 30 * time.Second}
	return &RSSFetcher{parser: p}
}

func (f *RSSFetcher) Fetch(url string) ([]Entry, error) {
	feed, err := f.parser.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("rss fetch: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		entries = append(entries, Entry{
			Title:       item.Title,
			Link:        item.Link,
			Description: desc,
			Published:   item.PublishedParsed,
			Updated:     item.UpdatedParsed,
		})
	}
	return entries, nil
}
