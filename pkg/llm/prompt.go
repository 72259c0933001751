package llm

import (
	"fmt"
	"strings"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/model"
)

const promptIntro = `以下は過去24時間のニュース記事の一覧です。記事はグループごとに分かれており、各記事には記号付き番号（例: D1, I2, S3）が振られています。`

const promptRules = `ルール:
- すべての記事を該当グループ内のいずれか1つのカテゴリに分類してください
- indexは記事一覧の記号付き番号（例: D1）をそのまま使用してください
- digestは各記事の要点を1行で簡潔に日本語で書いてください
- summaryは市場全体の動向を俯瞰的にまとめてください（3〜5文）
- highlightsには株式ニュースの注目点を1行ずつ挙げてください（なければ空配列）
- correlationには価格動向とニュースの関連についての考察を書いてください
- すべてのグループとすべてのカテゴリをキーとして出力してください（該当記事がない場合は空配列）
- JSON以外の出力は禁止です`

// Request is one built summarization request.
type Request struct {
	Prompt       string
	ArticleCount int
	HasMarket    bool
}

// Empty reports whether there is nothing to summarize. When true the
// pipeline skips the summarization call entirely.
func (r Request) Empty() bool {
	return r.ArticleCount == 0 && !r.HasMarket
}

// BuildRequest serializes the indexed per-group article lists and the market
// context into a single prompt with an explicit JSON output contract.
func BuildRequest(groups []config.Group, articles map[string][]model.Article, categories []string, marketText string) Request {
	var sb strings.Builder
	sb.WriteString(promptIntro)
	sb.WriteString("\n\n")

	count := 0
	for _, g := range groups {
		list := articles[g.ID]
		if len(list) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s（%s）\n\n", g.Label, g.ID))
		for i, a := range list {
			idx := model.FormatIndex(g.Prefix, i)
			sb.WriteString(fmt.Sprintf("%s. [%s] %s\n   URL: %s\n   概要: %s\n\n", idx, a.Source, a.Title, a.Link, a.Description))
			count++
		}
	}

	if marketText != "" {
		sb.WriteString("## 市場データ\n\n")
		sb.WriteString(marketText)
		sb.WriteString("\n")
	}

	sb.WriteString("---\n\n上記について、以下のJSON形式で出力してください。JSON以外のテキストは出力しないでください。\n\n")
	sb.WriteString(schemaInstruction(groups, categories))
	sb.WriteString("\n\n")
	sb.WriteString(promptRules)
	sb.WriteString("\n")

	return Request{
		Prompt:       sb.String(),
		ArticleCount: count,
		HasMarket:    marketText != "",
	}
}

func schemaInstruction(groups []config.Group, categories []string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString("  \"summary\": \"市場全体のサマリー（3〜5文の日本語テキスト）\",\n")
	sb.WriteString("  \"highlights\": [\"株式ニュースの注目点（1行ずつ）\"],\n")
	sb.WriteString("  \"correlation\": \"価格動向とニュースの関連についての考察\",\n")
	sb.WriteString("  \"groups\": {\n")
	for gi, g := range groups {
		sb.WriteString(fmt.Sprintf("    %q: {\n", g.ID))
		for ci, cat := range categories {
			sb.WriteString(fmt.Sprintf("      %q: [{\"index\": \"記事番号（例: %s1）\", \"digest\": \"1行要約（日本語）\"}]", cat, g.Prefix))
			if ci < len(categories)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("    }")
		if gi < len(groups)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  }\n")
	sb.WriteString("}")
	return sb.String()
}
