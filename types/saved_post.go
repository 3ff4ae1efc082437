package types

import "time"

type SavePostRequest struct {
	ContentID uint64 `json:"contentId,string" binding:"required"`
}

type SavedPostResponse struct {
	ID        uint64           `json:"id,string"`
	ContentID uint64           `json:"content_id,string"`
	SavedAt   time.Time        `json:"saved_at"`
	Content   *ContentResponse `json:"content"`
}
