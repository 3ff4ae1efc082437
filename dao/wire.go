//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewContentDAO,
	NewBrainDAO,
	NewShareLinkDAO,
	NewSavedPostDAO,
)
