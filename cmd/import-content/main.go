package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ivylu/wanderlog-api/internal/config"
	"github.com/ivylu/wanderlog-api/internal/services"
)

// Imports exported HTML post bodies into the content store. The source
// directory mirrors the store layout: <src>/travelogues/<id>.html and
// <src>/daily-life/<id>.zh.html style files.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if len(os.Args) < 2 {
		log.Fatal("Usage: import-content <source-dir>")
	}
	sourceDir := os.Args[1]

	// Load configuration
	cfg := config.Load()
	contentService := services.NewContentService(cfg.ContentDir)

	imported := 0
	skipped := 0

	for _, section := range []string{services.SectionTravelogues, services.SectionDailyLife} {
		entries, err := os.ReadDir(filepath.Join(sourceDir, section))
		if err != nil {
			if os.IsNotExist(err) {
				log.Printf("No %s directory in source, skipping", section)
				continue
			}
			log.Fatalf("Failed to read source directory: %v", err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
				skipped++
				continue
			}

			id, lang := splitContentName(entry.Name())
			if id == "" {
				log.Printf("Skipping unrecognized file: %s", entry.Name())
				skipped++
				continue
			}

			body, err := os.ReadFile(filepath.Join(sourceDir, section, entry.Name()))
			if err != nil {
				log.Fatalf("Failed to read %s: %v", entry.Name(), err)
			}

			if err := contentService.Write(section, id, lang, string(body)); err != nil {
				log.Fatalf("Failed to import %s: %v", entry.Name(), err)
			}

			log.Printf("Imported %s/%s", section, entry.Name())
			imported++
		}
	}

	log.Printf("Done. Imported %d files, skipped %d.", imported, skipped)
}

// splitContentName maps "kyoto.zh.html" to ("kyoto", "zh") and
// "kyoto.html" to ("kyoto", "").
func splitContentName(name string) (string, string) {
	base := strings.TrimSuffix(name, ".html")
	if base == "" {
		return "", ""
	}

	if idx := strings.LastIndex(base, "."); idx > 0 {
		lang := base[idx+1:]
		if lang == "en" || lang == "zh" {
			return base[:idx], lang
		}
	}
	return base, ""
}
