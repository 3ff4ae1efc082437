package types

import (
	"brainvault/models"
	"time"
)

type UserResponse struct {
	ID        uint64    `json:"id,string"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Google    bool      `json:"google"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	User    *UserResponse      `json:"user"`
	Content []*ContentResponse `json:"content"`
}

func NewUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Google:    u.GoogleID != nil,
		CreatedAt: u.CreatedAt,
	}
	if u.Email != nil {
		resp.Email = *u.Email
	}
	return resp
}
