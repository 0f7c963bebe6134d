package bootstrap

import (
	"hotel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MessagingModule,
	components.PersistenceModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
