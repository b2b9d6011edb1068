package api

import (
	"fmt"
	"net/http"

	"meeting-scheduler/internal/domain/schedule"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/handler/httperr"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins
var errorMappings = []errorMapping{
	{errs.ErrNoActiveProject, http.StatusConflict, "No active project"},
	{errs.ErrProjectChanged, http.StatusConflict, "Active project changed during generation"},
	{errs.ErrNothingToUndo, http.StatusConflict, "Nothing to undo"},
	{errs.ErrNothingToRedo, http.StatusConflict, "Nothing to redo"},
	{errs.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
	{errs.ErrSupplierNotFound, http.StatusNotFound, "Supplier not found"},
	{errs.ErrBuyerNotFound, http.StatusNotFound, "Buyer not found"},
	{errs.ErrMeetingNotFound, http.StatusNotFound, "Meeting not found"},
	{errs.ErrSlotNotFound, http.StatusNotFound, "Time slot not found"},
	{errs.ErrInvalidStrategy, http.StatusUnprocessableEntity, "Invalid strategy"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
	{errs.ErrGenerationTimedOut, http.StatusGatewayTimeout, "Schedule generation timed out"},
	{errs.ErrGeneratorStopped, http.StatusServiceUnavailable, "Schedule generator unavailable"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

var failureStatus = map[schedule.FailureKind]int{
	schedule.FailureNotFound:          http.StatusNotFound,
	schedule.FailureConflict:          http.StatusConflict,
	schedule.FailureInvalidTransition: http.StatusConflict,
	schedule.FailureNoAvailableSlot:   http.StatusConflict,
	schedule.FailureInvalidInput:      http.StatusUnprocessableEntity,
}

// respondOperation writes 200 for a successful mutation and maps a refusal to its
// status, keeping the operation outcome in the error detail.
func respondOperation(c *gin.Context, res *commands.MutationResult) {
	body := resdto.FromMutationResult(res)
	if res.Success {
		c.JSON(http.StatusOK, body)
		return
	}
	status, ok := failureStatus[res.Failure]
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	httperr.AbortWithError(c, status, fmt.Errorf("%s: %s", res.Failure, res.Message), res.Message, body)
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
