//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"chatty/internal/chat"
)

// This is just a declaration — wire generates the real body.
func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideDatabase,
		ProvideFeed,
		ProvideStore,
		ProvideMongo,
		ProvideBlobs,
		ProvideNotifier,
		chat.NewResolver,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}
