package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Abort writes the response for err and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}

// Respond translates err into a JSON error response. Anything that is not
// an *Error is logged and reported as an internal error.
func Respond(c *gin.Context, err error) {
	be, ok := As(err)
	if !ok {
		slog.ErrorContext(c.Request.Context(), "unexpected error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		Internal(c, "internal_error", "Internal server error")
		return
	}

	if be.Kind == KindUpload {
		slog.ErrorContext(c.Request.Context(), "upload failed", "error", be.Err)
	}

	Write(c, be.Kind.Status(), be.Code, be.Message)
}
