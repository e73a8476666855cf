package api

import (
	"context"
	"net/http"

	resdto "dropengine/internal/handler/dto/response"
	"dropengine/internal/handler/httperr"
	"dropengine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the engine's admin operations. Each call runs to
// completion even if the client disconnects; a forced drop holds the request
// for the whole response window.
type AdminHandler struct {
	commands usecase.DropCommands
}

func NewAdminHandler(commands usecase.DropCommands) *AdminHandler {
	return &AdminHandler{
		commands: commands,
	}
}

// @Summary Run one scheduling tick
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.TickResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/drops/tick [post]
func (h *AdminHandler) Tick(c *gin.Context) {
	report := h.commands.Tick(detached(c))
	c.JSON(http.StatusOK, resdto.FromTickReport(report))
}

// @Summary Force a drop now
// @Description Opens a drop immediately, ignoring the cycle quota
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.DropResultResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/drops/force [post]
func (h *AdminHandler) ForceDrop(c *gin.Context) {
	result := h.commands.ForceDrop(detached(c))
	c.JSON(http.StatusOK, resdto.FromDropResult(result))
}

// @Summary Reset prize stock
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /api/admin/drops/reset-pool [post]
func (h *AdminHandler) ResetPool(c *gin.Context) {
	h.commands.ResetPool(detached(c))
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Prize pool reset to defaults"})
}

// @Summary Clear winner history
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /api/admin/drops/reset-history [post]
func (h *AdminHandler) ResetHistory(c *gin.Context) {
	h.commands.ResetHistory(detached(c))
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Winner history cleared"})
}

// @Summary Restart the claim cycle
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CycleResponse
// @Router /api/admin/drops/reset-cycle [post]
func (h *AdminHandler) ResetCycle(c *gin.Context) {
	resp, err := resdto.FromCycle(h.commands.ResetCycleNow(detached(c)))
	if err != nil {
		httperr.Internal().Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func detached(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
