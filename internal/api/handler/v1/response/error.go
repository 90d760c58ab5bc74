package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.Code, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Code: http.StatusBadRequest,
		Msg:  err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		Code: http.StatusNotFound,
		Msg:  fmt.Sprintf("%v with %v %v not found", resource, key, value),
	}
}

// ErrInternalServerError logs the wrapped error chain and hides it from the
// response body.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		Code: http.StatusInternalServerError,
		Msg:  "internal server error",
	}
}
