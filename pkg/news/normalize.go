package news

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/model"
)

const maxDescriptionRunes = 300

var tagRe = regexp.MustCompile(`<[^>]+>`)

// Collect fetches every configured feed and normalizes its entries into
// per-group article sequences. Order within a group follows feed iteration
// order. A failing feed is logged and skipped; it never aborts the run.
// Entries without a resolvable timestamp or older than now-window are dropped.
// The cutoff is inclusive: an entry published exactly at now-window is kept.
func Collect(fetcher Fetcher, feeds []config.Feed, now time.Time, window time.Duration) map[string][]model.Article {
	cutoff := now.Add(-window)
	articles := make(map[string][]model.Article)

	for _, feed := range feeds {
		entries, err := fetcher.Fetch(feed.URL)
		if err != nil {
			slog.Error("error fetching feed", "feed", feed.Name, "error", err)
			continue
		}

		var kept, dropped int
		for _, e := range entries {
			published := resolveTimestamp(e)
			if published == nil {
				dropped++
				continue
			}

			publishedJST := published.In(model.JST)
			if publishedJST.Before(cutoff) {
				dropped++
				continue
			}

			articles[feed.Group] = append(articles[feed.Group], model.Article{
				Title:       strings.TrimSpace(e.Title),
				Link:        strings.TrimSpace(e.Link),
				Description: normalizeDescription(e.Description),
				Source:      feed.Name,
				Group:       feed.Group,
				PublishedAt: publishedJST,
			})
			kept++
		}

		slog.Info("feed fetched", "feed", feed.Name, "group", feed.Group, "kept", kept, "dropped", dropped)
	}

	return articles
}

func resolveTimestamp(e Entry) *time.Time {
	if e.Published != nil {
		return e.Published
	}
	return e.Updated
}

// normalizeDescription strips markup tags and truncates to 300 runes.
// Tag removal is a plain regex pass, not full HTML parsing; malformed
// markup may leave residual text.
func normalizeDescription(s string) string {
	s = strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
	return truncate(s, maxDescriptionRunes)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
