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

type HistoryHandler struct {
	cmds commands.HistoryCommands
	q    queries.HistoryQueries
}

func NewHistoryHandler(cmds commands.HistoryCommands, q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{cmds: cmds, q: q}
}

// @Summary Get history
// @Description Redemption history for the current user, most recent first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HistoryResponse
// @Failure 401 {object} httperr.Response
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entries, err := h.q.GetHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryViews(entries))
}

// @Summary Log history
// @Description Append redeemed vouchers to the current user's history
// @Tags history
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LogHistoryRequest true "Items to log"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /history [post]
func (h *HistoryHandler) Log(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.LogHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.LogEntries(c.Request.Context(), userID, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "History recorded"})
}
