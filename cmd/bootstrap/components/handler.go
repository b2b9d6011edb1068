package components

import (
	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProjectHandler,
		api.NewScheduleHandler,
		api.NewMeetingHandler,
		api.NewHistoryHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	project *api.ProjectHandler,
	schedule *api.ScheduleHandler,
	meeting *api.MeetingHandler,
	history *api.HistoryHandler,
) handler.Handlers {
	return handler.Handlers{
		Project:  project,
		Schedule: schedule,
		Meeting:  meeting,
		History:  history,
	}
}
