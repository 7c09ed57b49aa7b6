//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kargones/gitlab-client/pkg/config"
)

//go:generate wire

// ProviderSet объединяет все провайдеры.
//
// При добавлении новых провайдеров:
// 1. Создать функцию провайдера в providers.go
// 2. Добавить её в ProviderSet
// 3. Перегенерировать: go generate ./pkg/di/...
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideMetricsCollector,
	ProvideTracerProvider,
	ProvideClient,
	wire.Struct(new(App), "*"),
)

// InitializeApp создаёт App через Wire DI.
//
//	cfg, err := config.Load("gitlab.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app, err := di.InitializeApp(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close(context.Background())
//	users, err := app.Client.GetUsers(ctx, nil)
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
