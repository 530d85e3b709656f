package handlers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an in-memory SQLite database with the comment, post,
// and activity tables. The Postgres-specific defaults in the model tags
// don't translate to SQLite, so the schema is created by hand.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE comments (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT 'Anonymous',
			email TEXT,
			message TEXT NOT NULL,
			parent_id TEXT,
			session_id TEXT NOT NULL,
			is_approved BOOLEAN DEFAULT TRUE,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE travelogues (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			date TEXT,
			cover_image TEXT,
			route TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE daily_life (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			date TEXT,
			cover_image TEXT,
			route TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE activities (
			id TEXT PRIMARY KEY,
			activity_type TEXT NOT NULL,
			target_id TEXT,
			metadata TEXT DEFAULT '{}',
			created_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}

	return db
}
