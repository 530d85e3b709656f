package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		given  string
		want   bool
	}{
		{"matching token", "tok-1", "tok-1", true},
		{"wrong token", "tok-1", "tok-2", false},
		{"empty given token", "tok-1", "", false},
		{"empty stored token never matches", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.stored, tt.given))
		})
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		given   string
		isAdmin bool
		want    bool
	}{
		{"matching token", "tok-1", "tok-1", false, true},
		{"wrong token", "tok-1", "tok-2", false, false},
		{"admin without token", "tok-1", "", true, true},
		{"admin with wrong token", "tok-1", "tok-2", true, true},
		{"empty stored token without admin", "", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.stored, tt.given, tt.isAdmin))
		})
	}
}
