package bootstrap

import (
	"meeting-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.PersistenceModule,
	components.WorkerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
