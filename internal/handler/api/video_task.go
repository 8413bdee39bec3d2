package api

import (
	"net/http"

	reqdto "lionrewards/internal/handler/dto/request"
	resdto "lionrewards/internal/handler/dto/response"
	"lionrewards/internal/handler/httperr"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VideoTaskHandler struct {
	cmds commands.VideoWatchCommands
	q    queries.VideoTaskQueries
}

func NewVideoTaskHandler(cmds commands.VideoWatchCommands, q queries.VideoTaskQueries) *VideoTaskHandler {
	return &VideoTaskHandler{cmds: cmds, q: q}
}

// @Summary List video tasks
// @Tags video-tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VideoTaskListResponse
// @Router /video-tasks [get]
func (h *VideoTaskHandler) List(c *gin.Context) {
	tasks, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromVideoTaskViews(tasks)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get video task
// @Tags video-tasks
// @Produce json
// @Security BearerAuth
// @Param task_id path int true "Video task ID"
// @Success 200 {object} resdto.VideoTaskDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /video-tasks/{task_id} [get]
func (h *VideoTaskHandler) Get(c *gin.Context) {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}
	task, err := h.q.Get(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromVideoTaskView(task)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Complete video task
// @Description Record a watched video and credit its points; a task pays out once per user
// @Tags video-tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompleteTaskRequest true "Task to complete"
// @Success 200 {object} resdto.TaskCompletedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /video-watches [post]
func (h *VideoTaskHandler) Complete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CompleteTask(c.Request.Context(), userID, req.TaskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompleteTaskResult(result))
}
