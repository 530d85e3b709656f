package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ivylu/wanderlog-api/internal/models"
)

func seedComment(t *testing.T, db *gorm.DB, session, message string, parent *uuid.UUID) models.Comment {
	t.Helper()
	comment := models.Comment{
		Name:       "Ivy",
		Message:    message,
		ParentID:   parent,
		SessionID:  session,
		IsApproved: true,
	}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}

func commentTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/api/v1/comments/:id", UpdateComment(db))
	r.DELETE("/api/v1/comments/:id", DeleteComment(db))
	return r
}

func jsonRequest(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func countComments(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	return count
}

func TestDeleteCommentCascade(t *testing.T) {
	db := openTestDB(t)
	r := commentTestRouter(db)

	top1 := seedComment(t, db, "tok-a", "first thread", nil)
	reply1 := seedComment(t, db, "tok-b", "reply one", &top1.ID)
	reply2 := seedComment(t, db, "tok-c", "reply two", &top1.ID)
	top2 := seedComment(t, db, "tok-d", "second thread", nil)
	reply3 := seedComment(t, db, "tok-e", "unrelated reply", &top2.ID)

	w := jsonRequest(r, http.MethodDelete, "/api/v1/comments/"+top1.ID.String(), gin.H{"session_id": "tok-a"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":3`)

	// The thread is gone and nothing else is.
	assert.Equal(t, int64(2), countComments(t, db))
	for _, gone := range []uuid.UUID{top1.ID, reply1.ID, reply2.ID} {
		err := db.First(&models.Comment{}, "id = ?", gone).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}
	for _, kept := range []uuid.UUID{top2.ID, reply3.ID} {
		require.NoError(t, db.First(&models.Comment{}, "id = ?", kept).Error)
	}
}

func TestDeleteCommentReplyDoesNotCascade(t *testing.T) {
	db := openTestDB(t)
	r := commentTestRouter(db)

	top := seedComment(t, db, "tok-a", "thread", nil)
	reply := seedComment(t, db, "tok-b", "reply", &top.ID)
	sibling := seedComment(t, db, "tok-c", "sibling reply", &top.ID)

	w := jsonRequest(r, http.MethodDelete, "/api/v1/comments/"+reply.ID.String(), gin.H{"session_id": "tok-b"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":1`)

	assert.Equal(t, int64(2), countComments(t, db))
	require.NoError(t, db.First(&models.Comment{}, "id = ?", top.ID).Error)
	require.NoError(t, db.First(&models.Comment{}, "id = ?", sibling.ID).Error)
}

func TestDeleteCommentWrongSession(t *testing.T) {
	db := openTestDB(t)
	r := commentTestRouter(db)

	top := seedComment(t, db, "tok-a", "thread", nil)
	seedComment(t, db, "tok-b", "reply", &top.ID)

	w := jsonRequest(r, http.MethodDelete, "/api/v1/comments/"+top.ID.String(), gin.H{"session_id": "tok-wrong"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
	assert.Equal(t, int64(2), countComments(t, db))
}

func TestUpdateCommentPatch(t *testing.T) {
	db := openTestDB(t)
	r := commentTestRouter(db)

	comment := seedComment(t, db, "tok-a", "original", nil)

	t.Run("owner edits message", func(t *testing.T) {
		w := jsonRequest(r, http.MethodPatch, "/api/v1/comments/"+comment.ID.String(), gin.H{
			"session_id": "tok-a",
			"message":    "edited",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Comment
		require.NoError(t, db.First(&stored, "id = ?", comment.ID).Error)
		assert.Equal(t, "edited", stored.Message)
		assert.Equal(t, "Ivy", stored.Name)
	})

	t.Run("wrong session rejected", func(t *testing.T) {
		w := jsonRequest(r, http.MethodPatch, "/api/v1/comments/"+comment.ID.String(), gin.H{
			"session_id": "tok-wrong",
			"message":    "hijacked",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)

		var stored models.Comment
		require.NoError(t, db.First(&stored, "id = ?", comment.ID).Error)
		assert.Equal(t, "edited", stored.Message)
	})
}
