package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cc-kojima-a/Kojima-News/internal/publish"
)

type ArchiveStore interface {
	Links() ([]publish.ArchiveLink, error)
}

type ArchiveHandler struct {
	store ArchiveStore
}

func NewArchiveHandler(store ArchiveStore) *ArchiveHandler {
	return &ArchiveHandler{store: store}
}

type ArchiveEntryResponse struct {
	Date string `json:"date"`
	Path string `json:"path"`
}

type ArchiveResponse struct {
	Entries []ArchiveEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

// GetArchive returns the archive listing, newest first.
func (h *ArchiveHandler) GetArchive(c *gin.Context) {
	links, err := h.store.Links()
	if err != nil {
		slog.Error("error scanning archive", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Archive scan error"})
		return
	}

	entries := make([]ArchiveEntryResponse, 0, len(links))
	for _, l := range links {
		entries = append(entries, ArchiveEntryResponse{Date: l.Date, Path: l.Path})
	}

	c.JSON(http.StatusOK, ArchiveResponse{Entries: entries, Total: len(entries)})
}

func (h *ArchiveHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DirStore serves the archive listing straight from the docs directory.
type DirStore struct {
	DocsDir string
}

func (s DirStore) Links() ([]publish.ArchiveLink, error) {
	return publish.ScanArchive(s.DocsDir)
}
