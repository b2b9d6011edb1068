package components

import (
	"meeting-scheduler/internal/infra/memstore"
	"meeting-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		memstore.NewProjectRepository,
		shared.NewWorkspace,
	),
)
