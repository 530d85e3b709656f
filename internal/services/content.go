package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Post sections map to subdirectories of the content dir.
const (
	SectionTravelogues = "travelogues"
	SectionDailyLife   = "daily-life"
)

// ContentService stores the rich HTML post bodies on the filesystem, one
// file per post, with an optional language-suffixed variant next to the
// default file (kyoto-2024-07.zh.html beside kyoto-2024-07.html).
type ContentService struct {
	baseDir string
}

func NewContentService(baseDir string) *ContentService {
	return &ContentService{baseDir: baseDir}
}

func (s *ContentService) filePath(section, id, lang string) string {
	name := id + ".html"
	if lang != "" {
		name = id + "." + lang + ".html"
	}
	return filepath.Join(s.baseDir, section, name)
}

// Read returns the body for id in the given language variant ("" for the
// default file). A missing file is reported as found=false with a nil
// error; any other read failure is an error.
func (s *ContentService) Read(section, id, lang string) (string, bool, error) {
	body, err := os.ReadFile(s.filePath(section, id, lang))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read content file: %w", err)
	}
	return string(body), true, nil
}

// Resolve picks the display body for a post: the language-specific file
// wins, then the default file, then the caller-supplied fallback (the
// post's stored description). Read errors other than not-found surface
// instead of falling through.
func (s *ContentService) Resolve(section, id, lang, fallback string) (string, error) {
	if lang != "" {
		body, found, err := s.Read(section, id, lang)
		if err != nil {
			return "", err
		}
		if found {
			return body, nil
		}
	}

	body, found, err := s.Read(section, id, "")
	if err != nil {
		return "", err
	}
	if found {
		return body, nil
	}

	return fallback, nil
}

// Write saves the body for id, creating the section directory as needed.
// An empty lang writes the default file.
func (s *ContentService) Write(section, id, lang, body string) error {
	dir := filepath.Join(s.baseDir, section)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	if err := os.WriteFile(s.filePath(section, id, lang), []byte(body), 0o644); err != nil {
		return fmt.Errorf("failed to write content file: %w", err)
	}
	return nil
}
