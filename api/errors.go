package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/Domenick1991/flightasset/internal/provider"
	"github.com/Domenick1991/flightasset/internal/tokens"
	"github.com/Domenick1991/flightasset/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error  string                 `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func badRequestBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}

// renderError maps service errors onto HTTP statuses. Anything unrecognised
// is logged and reported as a 500 without details.
func renderError(c *gin.Context, log zerolog.Logger, err error) {
	if errs, ok := validation.AsErrors(err); ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: errs})
		return
	}

	switch {
	case errors.Is(err, tokens.ErrExpiredToken):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "token expired"})
	case errors.Is(err, tokens.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, provider.ErrUpstream):
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, errorResponse{Error: "flight provider unavailable"})
	default:
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
