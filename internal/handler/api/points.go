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

type PointsHandler struct {
	cmds commands.PointsCommands
	q    queries.PointsQueries
}

func NewPointsHandler(cmds commands.PointsCommands, q queries.PointsQueries) *PointsHandler {
	return &PointsHandler{cmds: cmds, q: q}
}

// @Summary Get points
// @Description Get the current user's points balance
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PointsResponse
// @Failure 401 {object} httperr.Response
// @Router /points [get]
func (h *PointsHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	balance, err := h.q.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PointsResponse{Points: balance})
}

// @Summary Update points
// @Description Add (positive) or subtract (negative) points from the current user's balance
// @Tags points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePointsRequest true "Signed delta"
// @Success 200 {object} resdto.PointsUpdatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /points [put]
func (h *PointsHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "body.delta must be a number", nil)
		return
	}
	balance, err := h.cmds.ApplyDelta(c.Request.Context(), userID, *req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PointsUpdatedResponse{Message: "Points updated", Points: balance})
}
