package components

import (
	"hotel-booking/internal/infra/gateway"
	"hotel-booking/internal/infra/riskscore"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			gateway.NewAamarPayClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			riskscore.NewClient,
			fx.As(new(commands.RiskScorer)),
		),
	),
)
