package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standops/stand-status-api/internal/api/handler/v1/request"
	"github.com/standops/stand-status-api/internal/api/handler/v1/response"
	"github.com/standops/stand-status-api/internal/domain"
	"github.com/standops/stand-status-api/internal/service"
)

type CircuitService interface {
	ListCircuits(ctx context.Context) ([]domain.Circuit, error)
	GetCircuit(ctx context.Context, circuitID string) (domain.Circuit, error)
	ToggleOccupied(ctx context.Context, circuitID string) error
	ToggleActive(ctx context.Context, circuitID string) error
	AssignUser(ctx context.Context, circuitID string, userID *string) error
	UpdateTaskNumber(ctx context.Context, circuitID string, taskNumber *string) error
}

type CircuitHandler struct {
	svc CircuitService
}

func NewCircuitHandler(svc CircuitService) *CircuitHandler {
	return &CircuitHandler{
		svc: svc,
	}
}

// HandleListCircuits godoc
// @Summary      List all circuits
// @Tags         circuits
// @Produce      json
// @Success      200  {array}   domain.Circuit
// @Failure      500  {object}  response.Err
// @Router       /circuits [get]
func (h *CircuitHandler) HandleListCircuits(ctx *gin.Context) {
	circuits, err := h.svc.ListCircuits(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCircuits -> h.svc.ListCircuits -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, circuits)
}

// HandleGetCircuit godoc
// @Summary      Get a circuit by id
// @Tags         circuits
// @Produce      json
// @Param        circuitID  path  string  true  "Circuit ID"
// @Success      200  {object}  domain.Circuit
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /circuits/{circuitID} [get]
func (h *CircuitHandler) HandleGetCircuit(ctx *gin.Context) {
	circuitID := ctx.Param("circuitID")

	circuit, err := h.svc.GetCircuit(ctx.Request.Context(), circuitID)
	if err != nil {
		if errors.Is(err, service.ErrCircuitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("circuit", "ID", circuitID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCircuit -> h.svc.GetCircuit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, circuit)
}

// HandleToggleCircuit godoc
// @Summary      Toggle a circuit's occupancy
// @Description  Freeing a circuit clears its assignee and task number. Unknown ids are ignored.
// @Tags         circuits
// @Param        circuitID  path  string  true  "Circuit ID"
// @Success      204
// @Failure      500  {object}  response.Err
// @Router       /circuits/{circuitID}/toggle [post]
func (h *CircuitHandler) HandleToggleCircuit(ctx *gin.Context) {
	circuitID := ctx.Param("circuitID")

	if err := h.svc.ToggleOccupied(ctx.Request.Context(), circuitID); err != nil {
		err = fmt.Errorf("v1.HandleToggleCircuit -> h.svc.ToggleOccupied -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleToggleCircuitActive godoc
// @Summary      Toggle a circuit's active state
// @Tags         circuits
// @Param        circuitID  path  string  true  "Circuit ID"
// @Success      204
// @Failure      500  {object}  response.Err
// @Router       /circuits/{circuitID}/toggle-active [post]
func (h *CircuitHandler) HandleToggleCircuitActive(ctx *gin.Context) {
	circuitID := ctx.Param("circuitID")

	if err := h.svc.ToggleActive(ctx.Request.Context(), circuitID); err != nil {
		err = fmt.Errorf("v1.HandleToggleCircuitActive -> h.svc.ToggleActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAssignUser godoc
// @Summary      Assign a user to a circuit
// @Description  A null userId unassigns and frees the circuit; the task number is kept either way.
// @Tags         circuits
// @Accept       json
// @Param        circuitID  path  string                     true  "Circuit ID"
// @Param        input      body  request.AssignUserRequest  true  "Assignee"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /circuits/{circuitID}/assignee [put]
func (h *CircuitHandler) HandleAssignUser(ctx *gin.Context) {
	circuitID := ctx.Param("circuitID")

	var req request.AssignUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.AssignUser(ctx.Request.Context(), circuitID, req.UserID); err != nil {
		err = fmt.Errorf("v1.HandleAssignUser -> h.svc.AssignUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleUpdateTaskNumber godoc
// @Summary      Update a circuit's task number
// @Description  The value is trimmed; a null or blank value clears the task number.
// @Tags         circuits
// @Accept       json
// @Param        circuitID  path  string                           true  "Circuit ID"
// @Param        input      body  request.UpdateTaskNumberRequest  true  "Task number"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /circuits/{circuitID}/task-number [put]
func (h *CircuitHandler) HandleUpdateTaskNumber(ctx *gin.Context) {
	circuitID := ctx.Param("circuitID")

	var req request.UpdateTaskNumberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.UpdateTaskNumber(ctx.Request.Context(), circuitID, req.TaskNumber); err != nil {
		err = fmt.Errorf("v1.HandleUpdateTaskNumber -> h.svc.UpdateTaskNumber -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
