package comments

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivylu/wanderlog-api/internal/models"
)

func comment(id uuid.UUID, parent *uuid.UUID) models.Comment {
	return models.Comment{ID: id, ParentID: parent}
}

func TestBuildThread(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	id3 := uuid.New()
	id4 := uuid.New()
	missing := uuid.New()

	t.Run("groups replies under their parents", func(t *testing.T) {
		list := []models.Comment{
			comment(id1, nil),
			comment(id2, &id1),
			comment(id3, nil),
			comment(id4, &missing),
		}

		threads := BuildThread(list)
		require.Len(t, threads, 2)

		assert.Equal(t, id1, threads[0].ID)
		require.Len(t, threads[0].Replies, 1)
		assert.Equal(t, id2, threads[0].Replies[0].ID)

		assert.Equal(t, id3, threads[1].ID)
		assert.Empty(t, threads[1].Replies)
	})

	t.Run("preserves input order in both tiers", func(t *testing.T) {
		list := []models.Comment{
			comment(id3, nil),
			comment(id4, &id1),
			comment(id1, nil),
			comment(id2, &id1),
		}

		threads := BuildThread(list)
		require.Len(t, threads, 2)
		assert.Equal(t, id3, threads[0].ID)
		assert.Equal(t, id1, threads[1].ID)

		require.Len(t, threads[1].Replies, 2)
		assert.Equal(t, id4, threads[1].Replies[0].ID)
		assert.Equal(t, id2, threads[1].Replies[1].ID)
	})

	t.Run("reply to a reply appears nowhere", func(t *testing.T) {
		list := []models.Comment{
			comment(id1, nil),
			comment(id2, &id1),
			comment(id3, &id2),
		}

		threads := BuildThread(list)
		require.Len(t, threads, 1)
		require.Len(t, threads[0].Replies, 1)
		assert.Equal(t, id2, threads[0].Replies[0].ID)
	})

	t.Run("empty list", func(t *testing.T) {
		threads := BuildThread(nil)
		assert.NotNil(t, threads)
		assert.Empty(t, threads)
	})

	t.Run("replies serialize as empty array not null", func(t *testing.T) {
		threads := BuildThread([]models.Comment{comment(id1, nil)})
		require.Len(t, threads, 1)
		assert.NotNil(t, threads[0].Replies)
	})
}
