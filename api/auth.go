package api

import (
	"net/http"

	"github.com/Domenick1991/flightasset/internal/service/auth"
	"github.com/Domenick1991/flightasset/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	service auth.AuthUseCase
	log     zerolog.Logger
}

type registeredAccount struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewAuthHandler(service auth.AuthUseCase, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/token/refresh", h.refresh)
}

func (h *AuthHandler) register(c *gin.Context) {
	var req validation.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	account, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		renderError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, registeredAccount{
		Username:  account.Username,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req validation.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	creds, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, creds)
}

func (h *AuthHandler) refresh(c *gin.Context) {
	var req validation.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	access, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}
