package api

import (
	"net/http"

	"github.com/Domenick1991/flightasset/internal/service/flights"
	"github.com/Domenick1991/flightasset/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type FlightHandler struct {
	service flights.FlightUseCase
	log     zerolog.Logger
}

func NewFlightHandler(service flights.FlightUseCase, log zerolog.Logger) *FlightHandler {
	return &FlightHandler{service: service, log: log}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.query)
	router.POST("/summary", h.summary)
}

func (h *FlightHandler) query(c *gin.Context) {
	var req validation.FlightQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	flight, err := h.service.Query(c.Request.Context(), req)
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) summary(c *gin.Context) {
	var req validation.FlightSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), req)
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
