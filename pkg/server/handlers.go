package server

import (
	"brainvault/handler"
)

type Handlers struct {
	Auth      *handler.Auth
	User      *handler.User
	Content   *handler.Content
	SavedPost *handler.SavedPost
	Brain     *handler.Brain
}
