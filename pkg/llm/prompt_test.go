package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/model"
)

var testGroups = []config.Group{
	{ID: "domestic-crypto", Label: "国内暗号資産ニュース", Prefix: "D"},
	{ID: "international-crypto", Label: "海外暗号資産ニュース", Prefix: "I"},
}

var testCategories = []string{"市場動向", "その他"}

func testArticles() map[string][]model.Article {
	now := time.Date(2026, 2, 26, 9, 0, 0, 0, model.JST)
	return map[string][]model.Article{
		"domestic-crypto": {
			{Title: "国内記事1", Link: "https://example.com/d1", Source: "CoinPost", Description: "概要1", PublishedAt: now},
			{Title: "国内記事2", Link: "https://example.com/d2", Source: "CoinPost", Description: "概要2", PublishedAt: now},
		},
		"international-crypto": {
			{Title: "海外記事1", Link: "https://example.com/i1", Source: "CoinDesk", Description: "概要3", PublishedAt: now},
		},
	}
}

func TestBuildRequestListsEveryArticleWithIndex(t *testing.T) {
	req := BuildRequest(testGroups, testArticles(), testCategories, "")

	assert.Equal(t, 3, req.ArticleCount)
	for _, want := range []string{
		"D1. [CoinPost] 国内記事1",
		"D2. [CoinPost] 国内記事2",
		"I1. [CoinDesk] 海外記事1",
		"https://example.com/d1",
		"概要3",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildRequestIncludesSchemaAndRules(t *testing.T) {
	req := BuildRequest(testGroups, testArticles(), testCategories, "")

	for _, want := range []string{
		`"summary"`,
		`"highlights"`,
		`"correlation"`,
		`"groups"`,
		`"domestic-crypto"`,
		`"international-crypto"`,
		"市場動向",
		"JSON以外の出力は禁止です",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildRequestMarketContext(t *testing.T) {
	req := BuildRequest(testGroups, nil, testCategories, "BTC: $65000\n")

	assert.Equal(t, true, req.HasMarket)
	assert.Equal(t, 0, req.ArticleCount)
	assert.Equal(t, false, req.Empty())
	if !strings.Contains(req.Prompt, "BTC: $65000") {
		t.Errorf("prompt missing market context")
	}
}

func TestBuildRequestEmpty(t *testing.T) {
	req := BuildRequest(testGroups, nil, testCategories, "")

	assert.Equal(t, true, req.Empty())
}
