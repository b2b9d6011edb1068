//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"meeting-scheduler/internal/handler/api"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"
	"meeting-scheduler/tests/common/httptest"
	commandsmock "meeting-scheduler/tests/mock/commands"
	queriesmock "meeting-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockQueries  *queriesmock.MockScheduleQueries
	handler      *api.HistoryHandler
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewHistoryHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/history", s.handler.Get)
	s.router.POST("/history/undo", s.handler.Undo)
	s.router.POST("/history/redo", s.handler.Redo)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().History(gomock.Any()).
		Return(&queries.HistoryView{CanUndo: true, UndoDepth: 3, Limit: 50}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "")

	var body resdto.HistoryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(resdto.HistoryResponse{CanUndo: true, UndoDepth: 3, Limit: 50}, body)
}

func (s *HistoryHandlerTestSuite) TestUndoRedo() {
	s.Run("success: undo returns the remaining depths", func() {
		s.mockCommands.EXPECT().Undo(gomock.Any()).
			Return(&commands.HistoryResult{CanUndo: true, CanRedo: true, UndoDepth: 1, RedoDepth: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/undo", nil, "")

		var body resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.CanRedo)
		s.Equal(1, body.RedoDepth)
	})

	s.Run("success: redo returns the remaining depths", func() {
		s.mockCommands.EXPECT().Redo(gomock.Any()).
			Return(&commands.HistoryResult{CanUndo: true, UndoDepth: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/redo", nil, "")

		var body resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.CanRedo)
		s.Equal(2, body.UndoDepth)
	})

	s.Run("error: 409 on empty stacks", func() {
		s.mockCommands.EXPECT().Undo(gomock.Any()).Return(nil, errs.ErrNothingToUndo).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/undo", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Nothing to undo")

		s.mockCommands.EXPECT().Redo(gomock.Any()).Return(nil, errs.ErrNothingToRedo).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/redo", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Nothing to redo")
	})
}
