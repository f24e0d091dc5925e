package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error body rendered to API clients.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"msg"`

	err error
}

func (e *Err) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return e.Msg
}

func NewErr(statusCode int, err error, msg string) *Err {
	return &Err{
		StatusCode: statusCode,
		Msg:        msg,
		err:        err,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err, err.Error())
}

func ErrNotFound(what, key string, value any) *Err {
	return NewErr(http.StatusNotFound, nil, fmt.Sprintf("%v with %v (%v) not found", what, key, value))
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, err, "wrong credentials")
}

func ErrPermissionDenied(err error) *Err {
	return NewErr(http.StatusForbidden, err, "permission denied")
}

// ErrInternalServerError keeps the cause server-side. RenderErr logs it;
// the client only ever sees the generic message.
func ErrInternalServerError(err error) *Err {
	return NewErr(http.StatusInternalServerError, err, "internal server error")
}

func ErrPaymentRequired(err error) *Err {
	return NewErr(http.StatusPaymentRequired, err, err.Error())
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.Int("status_code", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
