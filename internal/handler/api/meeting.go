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

type MeetingHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewMeetingHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *MeetingHandler {
	return &MeetingHandler{cmds: cmds, q: q}
}

// @Summary Add meeting
// @Description Place a meeting. Refused when the supplier is already booked; other conflicts are returned as warnings
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body reqdto.AddMeetingRequest true "Add meeting request"
// @Success 200 {object} resdto.OperationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /meetings [post]
func (h *MeetingHandler) Add(c *gin.Context) {
	var req reqdto.AddMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.AddMeeting(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOperation(c, res)
}

// @Summary Swap meetings
// @Description Exchange the slots of two active meetings
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body reqdto.SwapMeetingsRequest true "Swap request"
// @Success 200 {object} resdto.OperationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /meetings/swap [post]
func (h *MeetingHandler) Swap(c *gin.Context) {
	var req reqdto.SwapMeetingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.SwapMeetings(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOperation(c, res)
}

// @Summary Move meeting
// @Description Move a meeting to another slot
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body reqdto.MoveMeetingRequest true "Move request"
// @Success 200 {object} resdto.OperationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meetings/{id}/move [post]
func (h *MeetingHandler) Move(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.MoveMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.MoveMeeting(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOperation(c, res)
}

// @Summary Cancel meeting
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} resdto.OperationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meetings/{id}/cancel [post]
func (h *MeetingHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.CancelMeeting(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOperation(c, res)
}

// @Summary Bump meeting
// @Description Mark a meeting bumped and rebook it in the next slot the same day where both parties are free
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} resdto.OperationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meetings/{id}/bump [post]
func (h *MeetingHandler) Bump(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.BumpMeeting(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOperation(c, res)
}

// @Summary Change meeting status
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body reqdto.ChangeStatusRequest true "Status change"
// @Success 200 {object} resdto.OperationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /meetings/{id}/status [post]
func (h *MeetingHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOperation(c, res)
}

// @Summary Meeting conflicts
// @Description Buyer double-bookings and preference violations of one meeting
// @Tags conflicts
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 404 {object} httperr.Response
// @Router /meetings/{id}/conflicts [get]
func (h *MeetingHandler) Conflicts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.MeetingConflicts(c.Request.Context(), id)
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
