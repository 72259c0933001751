package publish

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ArchiveLink is one entry of the archive listing shown on every page.
type ArchiveLink struct {
	Date string
	Path string
}

// ScanArchive lists persisted archive entries newest first. The listing is
// derived purely from the directory contents; a missing archive directory
// yields an empty listing.
func ScanArchive(docsDir string) ([]ArchiveLink, error) {
	entries, err := os.ReadDir(filepath.Join(docsDir, "archive"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	links := make([]ArchiveLink, 0, len(names))
	for _, name := range names {
		links = append(links, ArchiveLink{
			Date: strings.TrimSuffix(name, ".html"),
			Path: "archive/" + name,
		})
	}
	return links, nil
}
