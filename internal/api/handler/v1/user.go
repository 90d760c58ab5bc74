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

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID string) (domain.User, error)
	AddUser(ctx context.Context, name string) (domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  response.Err
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleGetUser godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        userID  path  string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{userID} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID := ctx.Param("userID")

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleCreateUser godoc
// @Summary      Add a user to the roster
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input  body  request.CreateUserRequest  true  "User name"
// @Success      201  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.AddUser(ctx.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUserNameRequired) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserNameRequired))
			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.AddUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Description  Circuits assigned to the user are released first; their task numbers are kept.
// @Tags         users
// @Param        userID  path  string  true  "User ID"
// @Success      204
// @Failure      500  {object}  response.Err
// @Router       /users/{userID} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	userID := ctx.Param("userID")

	if err := h.svc.DeleteUser(ctx.Request.Context(), userID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
