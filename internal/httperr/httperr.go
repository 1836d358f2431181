package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// Respond maps a core error onto the HTTP surface. Validation, not-found and
// conflict messages are safe to show verbatim; everything else is logged with
// full detail and answered with a generic message.
func Respond(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, ve.Message)
		return
	}

	var nfe NotFoundError
	if errors.As(err, &nfe) {
		NotFound(c, nfe.Error())
		return
	}

	var ce ConflictError
	if errors.As(err, &ce) {
		Conflict(c, ce.Message)
		return
	}

	log.Error().
		Err(err).
		Str("path", c.FullPath()).
		Str("request_id", c.GetString("requestID")).
		Msg("internal error")

	Internal(c, "internal server error")
}
