package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/handler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	archiveHandler := handler.NewArchiveHandler(handler.DirStore{DocsDir: cfg.DocsDir})

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.StaticFile("/", filepath.Join(cfg.DocsDir, "index.html"))
	r.Static("/archive", filepath.Join(cfg.DocsDir, "archive"))
	r.GET("/api/archive", archiveHandler.GetArchive)
	r.GET("/health", archiveHandler.GetHealth)

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
