package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContentFile(t *testing.T, baseDir, section, name, body string) {
	t.Helper()
	dir := filepath.Join(baseDir, section)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestContentServiceRead(t *testing.T) {
	dir := t.TempDir()
	svc := NewContentService(dir)

	writeContentFile(t, dir, SectionTravelogues, "kyoto.html", "<p>default</p>")
	writeContentFile(t, dir, SectionTravelogues, "kyoto.zh.html", "<p>中文</p>")

	body, found, err := svc.Read(SectionTravelogues, "kyoto", "")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "<p>default</p>", body)

	body, found, err = svc.Read(SectionTravelogues, "kyoto", "zh")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "<p>中文</p>", body)

	_, found, err = svc.Read(SectionTravelogues, "nowhere", "")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContentServiceResolve(t *testing.T) {
	dir := t.TempDir()
	svc := NewContentService(dir)

	writeContentFile(t, dir, SectionTravelogues, "kyoto.html", "<p>default</p>")
	writeContentFile(t, dir, SectionTravelogues, "kyoto.zh.html", "<p>中文</p>")
	writeContentFile(t, dir, SectionDailyLife, "lego.html", "<p>bricks</p>")

	tests := []struct {
		name     string
		section  string
		id       string
		lang     string
		fallback string
		want     string
	}{
		{"language file wins", SectionTravelogues, "kyoto", "zh", "desc", "<p>中文</p>"},
		{"default file when language missing", SectionTravelogues, "kyoto", "en", "desc", "<p>default</p>"},
		{"default file when no language asked", SectionTravelogues, "kyoto", "", "desc", "<p>default</p>"},
		{"default file over fallback", SectionDailyLife, "lego", "zh", "desc", "<p>bricks</p>"},
		{"fallback when no files", SectionTravelogues, "nowhere", "zh", "stored description", "stored description"},
		{"empty fallback allowed", SectionTravelogues, "nowhere", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(tt.section, tt.id, tt.lang, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentServiceWrite(t *testing.T) {
	dir := t.TempDir()
	svc := NewContentService(dir)

	require.NoError(t, svc.Write(SectionDailyLife, "lego", "", "<p>v1</p>"))
	require.NoError(t, svc.Write(SectionDailyLife, "lego", "zh", "<p>v1 zh</p>"))

	body, found, err := svc.Read(SectionDailyLife, "lego", "")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "<p>v1</p>", body)

	// Overwrite
	require.NoError(t, svc.Write(SectionDailyLife, "lego", "", "<p>v2</p>"))
	body, _, err = svc.Read(SectionDailyLife, "lego", "")
	require.NoError(t, err)
	assert.Equal(t, "<p>v2</p>", body)

	body, found, err = svc.Read(SectionDailyLife, "lego", "zh")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "<p>v1 zh</p>", body)
}
