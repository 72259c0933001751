package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const validYAML = `
groups:
  - id: domestic-crypto
    label: 国内
    prefix: D
  - id: stock-news
    label: 株式
    prefix: S
feeds:
  - name: CoinPost
    url: https://example.com/feed
    group: domestic-crypto
categories:
  - 市場動向
  - その他
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))

	assert.Equal(t, nil, err)
	assert.Equal(t, 24, cfg.LookbackHours)
	assert.Equal(t, 24*time.Hour, cfg.Window())
	assert.Equal(t, "docs", cfg.DocsDir)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
}

func TestLoadParsesGroupsAndFeeds(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(cfg.Groups))

	g, ok := cfg.GroupByID("domestic-crypto")
	assert.Equal(t, true, ok)
	assert.Equal(t, "D", g.Prefix)
	assert.Equal(t, "国内", g.Label)

	_, ok = cfg.GroupByID("nonexistent")
	assert.Equal(t, false, ok)

	assert.Equal(t, 1, len(cfg.Feeds))
	assert.Equal(t, "CoinPost", cfg.Feeds[0].Name)
}

func TestLoadRejectsUnknownFeedGroup(t *testing.T) {
	broken := strings.Replace(validYAML, "group: domestic-crypto", "group: made-up", 1)

	_, err := Load(writeConfig(t, broken))

	if err == nil || !strings.Contains(err.Error(), "unknown group") {
		t.Errorf("expected unknown group error, got %v", err)
	}
}

func TestLoadRejectsDuplicatePrefix(t *testing.T) {
	broken := strings.Replace(validYAML, "prefix: S", "prefix: D", 1)

	_, err := Load(writeConfig(t, broken))

	if err == nil || !strings.Contains(err.Error(), "share prefix") {
		t.Errorf("expected duplicate prefix error, got %v", err)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	_, err := Load(writeConfig(t, validYAML+"\nllm:\n  provider: gemini\n"))

	if err == nil || !strings.Contains(err.Error(), "unknown llm provider") {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRejectsEmptyCategories(t *testing.T) {
	broken := strings.Split(validYAML, "categories:")[0]

	_, err := Load(writeConfig(t, broken))

	if err == nil || !strings.Contains(err.Error(), "category") {
		t.Errorf("expected category error, got %v", err)
	}
}
