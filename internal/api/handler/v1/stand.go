package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standops/stand-status-api/internal/api/handler/v1/response"
	"github.com/standops/stand-status-api/internal/domain"
)

type StandService interface {
	ListStands(ctx context.Context) ([]domain.Stand, error)
	ToggleActive(ctx context.Context, standID string) error
}

type StandHandler struct {
	svc StandService
}

func NewStandHandler(svc StandService) *StandHandler {
	return &StandHandler{
		svc: svc,
	}
}

// HandleListStands godoc
// @Summary      List all stands
// @Tags         stands
// @Produce      json
// @Success      200  {array}   domain.Stand
// @Failure      500  {object}  response.Err
// @Router       /stands [get]
func (h *StandHandler) HandleListStands(ctx *gin.Context) {
	stands, err := h.svc.ListStands(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStands -> h.svc.ListStands -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stands)
}

// HandleToggleStand godoc
// @Summary      Toggle a stand's active state
// @Description  Deactivating a stand clears the task numbers of all its circuits. Unknown ids are ignored.
// @Tags         stands
// @Param        standID  path  string  true  "Stand ID"
// @Success      204
// @Failure      500  {object}  response.Err
// @Router       /stands/{standID}/toggle [post]
func (h *StandHandler) HandleToggleStand(ctx *gin.Context) {
	standID := ctx.Param("standID")

	if err := h.svc.ToggleActive(ctx.Request.Context(), standID); err != nil {
		err = fmt.Errorf("v1.HandleToggleStand -> h.svc.ToggleActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
