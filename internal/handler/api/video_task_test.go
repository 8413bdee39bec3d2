//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"lionrewards/internal/handler/api"
	resdto "lionrewards/internal/handler/dto/response"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"
	"lionrewards/tests/common/httptest"
	commandsmock "lionrewards/tests/mock/commands"
	queriesmock "lionrewards/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VideoTaskHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVideoWatchCommands
	mockQueries  *queriesmock.MockVideoTaskQueries
	handler      *api.VideoTaskHandler
}

func (s *VideoTaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVideoWatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVideoTaskQueries(s.mockCtrl)
	s.handler = api.NewVideoTaskHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/video-tasks", fakeAuth, s.handler.List)
	s.router.GET("/video-tasks/:task_id", fakeAuth, s.handler.Get)
	s.router.POST("/video-watches", fakeAuth, s.handler.Complete)
}

func (s *VideoTaskHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVideoTaskHandlerSuite(t *testing.T) {
	suite.Run(t, new(VideoTaskHandlerTestSuite))
}

func (s *VideoTaskHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.VideoTaskView{
		{TaskID: 1, Title: "Welcome to the pride", YoutubeID: "dQw4w9WgXcQ", PointValue: 5},
		{TaskID: 3, Title: "Our culture", YoutubeID: "y6120QOlsfU", PointValue: 15},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/video-tasks", nil, "bearer-token")

	var body resdto.VideoTaskListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body.Tasks, 2)
	s.Equal("y6120QOlsfU", body.Tasks[1].YoutubeID)
	s.Equal(int32(15), body.Tasks[1].PointValue)
}

func (s *VideoTaskHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), int64(3)).
			Return(&queries.VideoTaskView{TaskID: 3, Title: "Our culture", YoutubeID: "y6120QOlsfU", PointValue: 15}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/video-tasks/3", nil, "bearer-token")

		var body resdto.VideoTaskDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.Task.TaskID)
	})

	s.Run("error: 404 unknown task", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, queries.ErrVideoTaskNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/video-tasks/99", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Task not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/video-tasks/zero", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid task_id")
	})
}

func (s *VideoTaskHandlerTestSuite) TestComplete() {
	s.Run("success: reports the credit and the balance", func() {
		s.mockCommands.EXPECT().CompleteTask(gomock.Any(), testUserID, int64(3)).
			Return(&commands.CompleteTaskResult{TaskID: 3, Added: 15, Balance: 15}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/video-watches", map[string]any{"task_id": 3}, "bearer-token")

		var body resdto.TaskCompletedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(15), body.Added)
		s.Equal(int64(15), body.Points)
	})

	s.Run("error: 400 when already completed", func() {
		s.mockCommands.EXPECT().CompleteTask(gomock.Any(), testUserID, int64(3)).
			Return(nil, errs.Mark(errors.New("dup"), commands.ErrAlreadyCompleted))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/video-watches", map[string]any{"task_id": 3}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Task already completed")
	})

	s.Run("error: 404 unknown task", func() {
		s.mockCommands.EXPECT().CompleteTask(gomock.Any(), testUserID, int64(99)).
			Return(nil, errs.Mark(errors.New("no rows"), commands.ErrVideoTaskNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/video-watches", map[string]any{"task_id": 99}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Task not found")
	})

	s.Run("error: 400 on missing task_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/video-watches", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
