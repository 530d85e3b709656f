package comments

import (
	"github.com/google/uuid"

	"github.com/ivylu/wanderlog-api/internal/models"
)

// Thread is a top-level comment paired with its direct replies.
type Thread struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// BuildThread groups a flat comment list into two tiers: every top-level
// comment, in input order, carrying the replies whose parent_id points at
// it, also in input order. A reply whose parent is absent from the list, or
// is itself a reply, appears in no group.
func BuildThread(list []models.Comment) []Thread {
	replies := make(map[uuid.UUID][]models.Comment)
	for _, c := range list {
		if c.ParentID != nil {
			replies[*c.ParentID] = append(replies[*c.ParentID], c)
		}
	}

	threads := make([]Thread, 0, len(list))
	for _, c := range list {
		if c.ParentID != nil {
			continue
		}
		group := replies[c.ID]
		if group == nil {
			group = []models.Comment{}
		}
		threads = append(threads, Thread{Comment: c, Replies: group})
	}
	return threads
}
