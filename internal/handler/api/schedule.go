package api

import (
	"net/http"

	reqdto "meeting-scheduler/internal/handler/dto/request"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/handler/httperr"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Generate schedule
// @Description Replace the active schedule with a generated one. The previous schedule can be restored with undo
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateScheduleRequest false "Generation options"
// @Success 200 {object} resdto.GenerateResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /schedule/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateScheduleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	res, err := h.cmds.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenerateResult(res))
}

// @Summary Get schedule
// @Description Get the active schedule with participants, slots, meetings and unscheduled pairs
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 409 {object} httperr.Response
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	view, err := h.q.GetSchedule(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromScheduleView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List slots
// @Description List grid slots, optionally for a single date
// @Tags schedule
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 409 {object} httperr.Response
// @Router /schedule/slots [get]
func (h *ScheduleHandler) Slots(c *gin.Context) {
	views, err := h.q.ListSlots(c.Request.Context(), c.Query("date"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromSlotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Conflict summary
// @Description Buyer double-bookings and preference violations across the active schedule
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.ConflictSummaryResponse
// @Failure 409 {object} httperr.Response
// @Router /schedule/conflicts [get]
func (h *ScheduleHandler) ConflictSummary(c *gin.Context) {
	view, err := h.q.Summary(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromConflictSummaryView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Auto-fill gaps
// @Description Offer each cancelled meeting's slot to another eligible buyer
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.OperationResponse
// @Failure 409 {object} httperr.Response
// @Router /schedule/auto-fill [post]
func (h *ScheduleHandler) AutoFill(c *gin.Context) {
	res, err := h.cmds.AutoFillGaps(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOperation(c, res)
}

// @Summary Check add
// @Description Report the conflicts a new meeting would cause without changing the schedule
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body reqdto.AddMeetingRequest true "Prospective meeting"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /conflicts/check-add [post]
func (h *ScheduleHandler) CheckAdd(c *gin.Context) {
	var req reqdto.AddMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.CheckAdd(c.Request.Context(), req.SupplierID, req.BuyerID, req.SlotID)
	h.respondCheck(c, view, err)
}

// @Summary Check move
// @Description Report the conflicts moving a meeting would cause without changing the schedule
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body reqdto.CheckMoveRequest true "Prospective move"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /conflicts/check-move [post]
func (h *ScheduleHandler) CheckMove(c *gin.Context) {
	var req reqdto.CheckMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.CheckMove(c.Request.Context(), req.MeetingID, req.SlotID)
	h.respondCheck(c, view, err)
}

func (h *ScheduleHandler) respondCheck(c *gin.Context, view *queries.ConflictCheckView, err error) {
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromConflictCheckView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
