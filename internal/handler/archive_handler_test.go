package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/cc-kojima-a/Kojima-News/internal/publish"
)

type fakeStore struct {
	links []publish.ArchiveLink
	err   error
}

func (f *fakeStore) Links() ([]publish.ArchiveLink, error) {
	return f.links, f.err
}

func newTestRouter(store ArchiveStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArchiveHandler(store)
	r.GET("/api/archive", h.GetArchive)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetArchive_ReturnsEntries(t *testing.T) {
	store := &fakeStore{links: []publish.ArchiveLink{
		{Date: "2026-02-26", Path: "archive/2026-02-26.html"},
		{Date: "2026-02-25", Path: "archive/2026-02-25.html"},
	}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/archive", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArchiveResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "2026-02-26", res.Entries[0].Date)
	assert.Equal(t, "archive/2026-02-26.html", res.Entries[0].Path)
}

func TestGetArchive_Empty(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/archive", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArchiveResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0, res.Total)
}

func TestGetArchive_ScanError(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("disk gone")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/archive", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
