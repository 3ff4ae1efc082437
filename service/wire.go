package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(BrainService), "*"),
	wire.Bind(new(IBrainService), new(*BrainService)),

	wire.Struct(new(ContentService), "*"),
	wire.Bind(new(IContentService), new(*ContentService)),

	wire.Struct(new(ShareService), "*"),
	wire.Bind(new(IShareService), new(*ShareService)),

	wire.Struct(new(SavedPostService), "*"),
	wire.Bind(new(ISavedPostService), new(*SavedPostService)),

	NewGoogleVerifier,
)
