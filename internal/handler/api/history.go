package api

import (
	"net/http"

	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewHistoryHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *HistoryHandler {
	return &HistoryHandler{cmds: cmds, q: q}
}

// @Summary History state
// @Tags history
// @Produce json
// @Success 200 {object} resdto.HistoryResponse
// @Failure 409 {object} httperr.Response
// @Router /history [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	view, err := h.q.History(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryView(view))
}

// @Summary Undo
// @Description Restore the schedule before the last mutation
// @Tags history
// @Produce json
// @Success 200 {object} resdto.HistoryResponse
// @Failure 409 {object} httperr.Response
// @Router /history/undo [post]
func (h *HistoryHandler) Undo(c *gin.Context) {
	res, err := h.cmds.Undo(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryResult(res))
}

// @Summary Redo
// @Tags history
// @Produce json
// @Success 200 {object} resdto.HistoryResponse
// @Failure 409 {object} httperr.Response
// @Router /history/redo [post]
func (h *HistoryHandler) Redo(c *gin.Context) {
	res, err := h.cmds.Redo(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryResult(res))
}
