// Package publish persists the daily snapshot and regenerates the index page.
package publish

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

type Publisher struct {
	docsDir string
}

func NewPublisher(docsDir string) *Publisher {
	return &Publisher{docsDir: docsDir}
}

// Publish writes the dated archive entry, then re-scans the archive
// directory and writes the index page over a fresh listing, so the index
// always includes the just-published entry. Re-running on the same day
// overwrites both files. There is no transactional guarantee across the
// two writes.
func (p *Publisher) Publish(page Page) error {
	archiveDir := filepath.Join(p.docsDir, "archive")
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	links, err := ScanArchive(p.docsDir)
	if err != nil {
		return fmt.Errorf("scan archive: %w", err)
	}
	page.Archive = links

	html, err := Render(page)
	if err != nil {
		return fmt.Errorf("render archive page: %w", err)
	}

	archiveFile := filepath.Join(archiveDir, page.Date+".html")
	if err := os.WriteFile(archiveFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write archive page: %w", err)
	}
	slog.Info("archive saved", "file", archiveFile, "bytes", len(html))

	links, err = ScanArchive(p.docsDir)
	if err != nil {
		return fmt.Errorf("rescan archive: %w", err)
	}
	page.Archive = links

	html, err = Render(page)
	if err != nil {
		return fmt.Errorf("render index page: %w", err)
	}

	indexFile := filepath.Join(p.docsDir, "index.html")
	if err := os.WriteFile(indexFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write index page: %w", err)
	}
	slog.Info("index saved", "file", indexFile, "bytes", len(html))

	return nil
}
