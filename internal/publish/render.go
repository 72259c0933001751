package publish

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/model"
	"github.com/cc-kojima-a/Kojima-News/pkg/market"
)

//go:embed templates/daily.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/daily.html"))

// Page is the render-model handed to the template. It carries no further
// business logic; group and category order is fixed at build time so that
// identical inputs render byte-identical markup.
type Page struct {
	Date        string
	Summary     string
	Highlights  []string
	Correlation string
	Groups      []GroupSection
	Market      market.Snapshot
	Archive     []ArchiveLink
}

type GroupSection struct {
	Label      string
	Categories []CategorySection
}

type CategorySection struct {
	Name     string
	Articles []model.CategorizedArticle
}

// BuildPage assembles the render-model from the reconciled report, in
// configured group order and taxonomy order.
func BuildPage(date string, report *model.Report, groups []config.Group, categories []string, snapshot market.Snapshot) Page {
	page := Page{
		Date:        date,
		Summary:     report.Summary,
		Highlights:  report.Highlights,
		Correlation: report.Correlation,
		Market:      snapshot,
	}

	for _, g := range groups {
		buckets := report.Groups[g.ID]
		section := GroupSection{Label: g.Label}
		for _, cat := range categories {
			section.Categories = append(section.Categories, CategorySection{
				Name:     cat,
				Articles: buckets[cat],
			})
		}
		page.Groups = append(page.Groups, section)
	}

	return page
}

// Render produces the page markup. Third-party text (titles, descriptions,
// digests) passes through html/template's contextual escaping.
func Render(page Page) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
