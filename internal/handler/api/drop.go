package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "dropengine/internal/handler/dto/request"
	resdto "dropengine/internal/handler/dto/response"
	"dropengine/internal/handler/httperr"
	"dropengine/internal/pkg/errs"
	"dropengine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DropHandler serves the public read surface and claim ingress.
type DropHandler struct {
	queries usecase.DropQueries
	ingress usecase.ClaimIngress
}

func NewDropHandler(queries usecase.DropQueries, ingress usecase.ClaimIngress) *DropHandler {
	return &DropHandler{
		queries: queries,
		ingress: ingress,
	}
}

// @Summary Prize stock
// @Description Remaining stock per prize, ordered by rarity
// @Tags drops
// @Produce json
// @Success 200 {object} resdto.StatusResponse
// @Router /api/drops/status [get]
func (h *DropHandler) Status(c *gin.Context) {
	resp, err := resdto.FromStatus(h.queries.Status())
	if err != nil {
		httperr.Internal().Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Winner history
// @Description Winner log, newest first
// @Tags drops
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/drops/history [get]
func (h *DropHandler) History(c *gin.Context) {
	var q reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid page", nil)
		return
	}
	resp, err := resdto.FromHistory(h.queries.History(q.PageOrDefault()))
	if err != nil {
		httperr.Internal().Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cycle status
// @Description Claims, quota and reset estimate for the current cycle
// @Tags drops
// @Produce json
// @Success 200 {object} resdto.CycleResponse
// @Router /api/drops/cycle [get]
func (h *DropHandler) Cycle(c *gin.Context) {
	resp, err := resdto.FromCycle(h.queries.CycleStatus())
	if err != nil {
		httperr.Internal().Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Next spawn
// @Tags drops
// @Produce json
// @Success 200 {object} resdto.NextSpawnResponse
// @Router /api/drops/next [get]
func (h *DropHandler) NextSpawn(c *gin.Context) {
	next := h.queries.NextSpawn()
	c.JSON(http.StatusOK, resdto.NextSpawnResponse{
		NextSpawnTime: next,
		Scheduled:     next != nil,
	})
}

// @Summary Open drop
// @Description The drop currently accepting claims, if any
// @Tags drops
// @Produce json
// @Success 200 {object} resdto.ActiveDropResponse
// @Router /api/drops/active [get]
func (h *DropHandler) Active(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromActiveDrop(h.queries.ActiveDrop()))
}

// @Summary Submit claim
// @Description Queue a claim attempt for the open drop
// @Tags drops
// @Accept json
// @Produce json
// @Param request body reqdto.ClaimRequest true "Claim attempt"
// @Success 202 {object} resdto.ClaimAcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/drops/claims [post]
func (h *DropHandler) Claim(c *gin.Context) {
	var req reqdto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, handle := req.Normalize()
	attempt, err := h.ingress.Submit(userID, handle)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoActiveDrop):
			httperr.AbortWithError(c, http.StatusConflict, err, "No drop is open", nil)
		case errors.Is(err, errs.ErrHandleMismatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Drop is no longer open", gin.H{"handle": handle.String()})
		case errors.Is(err, errs.ErrClaimBackpressure):
			httperr.AbortRetryLater(c, err, "Too many claim attempts", time.Second)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid claim", nil)
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromAttempt(attempt))
}
