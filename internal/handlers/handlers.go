package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
)

func invalidBody(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Invalid request body")
}

// bindOptionalJSON binds a JSON body, treating an empty body as "no fields".
func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func paramUUID(c *gin.Context, name string, invalid error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Respond(c, invalid)
		return uuid.Nil, false
	}
	return id, true
}
