package types

import (
	"brainvault/models"
	"time"
)

type AddContentRequest struct {
	Title string   `json:"title" binding:"required"`
	Type  string   `json:"type" binding:"required"`
	Link  string   `json:"link"`
	Tags  []string `json:"tags" binding:"omitempty,max=100"`
}

// UpdateContentRequest 未出现的字段不修改
type UpdateContentRequest struct {
	Title *string   `json:"title"`
	Link  *string   `json:"link"`
	Tags  *[]string `json:"tags"`
}

type ContentResponse struct {
	ID        uint64    `json:"id,string"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContentResponse(c *models.Content) *ContentResponse {
	tags := []string(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &ContentResponse{
		ID:        c.ID,
		Title:     c.Title,
		Type:      c.Type,
		Link:      c.Link,
		Tags:      tags,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewContentList(items []*models.Content) []*ContentResponse {
	out := make([]*ContentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewContentResponse(item))
	}
	return out
}
