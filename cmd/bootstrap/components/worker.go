package components

import (
	"meeting-scheduler/internal/infra/worker"
	"meeting-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewGenerator,
		func(g *worker.Generator) shared.ScheduleGenerator { return g },
	),
	fx.Invoke(registerGeneratorLifecycle),
)

func registerGeneratorLifecycle(lc fx.Lifecycle, g *worker.Generator) {
	lc.Append(fx.Hook{
		OnStart: g.Start,
		OnStop:  g.Stop,
	})
}
