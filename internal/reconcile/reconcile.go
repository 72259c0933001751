// Package reconcile maps the model's symbolic index references back onto
// the original article sequences.
package reconcile

import (
	"strings"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/model"
	"github.com/cc-kojima-a/Kojima-News/pkg/llm"
)

// Reconcile partitions articles into category buckets from the parsed
// payload. Every configured group gets a bucket map carrying every taxonomy
// category, even when empty. A reference whose index is malformed, has the
// wrong prefix, or falls outside the group's sequence is silently dropped.
// Articles the model did not reference are not surfaced. A nil result yields
// the empty-shaped report.
func Reconcile(result *llm.Result, groups []config.Group, articles map[string][]model.Article, categories []string) *model.Report {
	report := &model.Report{
		Groups: make(map[string]model.GroupBuckets, len(groups)),
	}
	if result != nil {
		report.Summary = result.Summary
		report.Highlights = result.Highlights
		report.Correlation = result.Correlation
	}

	for _, g := range groups {
		var refs map[string][]llm.Ref
		if result != nil {
			refs = result.Groups[g.ID]
		}
		report.Groups[g.ID] = reconcileGroup(g, articles[g.ID], refs, categories)
	}

	return report
}

func reconcileGroup(g config.Group, articles []model.Article, refs map[string][]llm.Ref, categories []string) model.GroupBuckets {
	buckets := make(model.GroupBuckets, len(categories))
	for _, cat := range categories {
		mapped := []model.CategorizedArticle{}
		for _, ref := range refs[cat] {
			pos, ok := model.ParseIndex(g.Prefix, strings.TrimSpace(ref.Index))
			if !ok || pos >= len(articles) {
				continue
			}
			a := articles[pos]
			mapped = append(mapped, model.CategorizedArticle{
				Title:  a.Title,
				Link:   a.Link,
				Source: a.Source,
				Digest: ref.Digest,
			})
		}
		buckets[cat] = mapped
	}
	return buckets
}
