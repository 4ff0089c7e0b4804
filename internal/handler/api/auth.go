package api

import (
	"net/http"
	"time"

	reqdto "grooming-booking/internal/handler/dto/request"
	resdto "grooming-booking/internal/handler/dto/response"
	"grooming-booking/internal/handler/httperr"
	"grooming-booking/internal/handler/middleware"
	"grooming-booking/internal/pkg/config"
	"grooming-booking/internal/pkg/cookie"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("customer not authenticated")

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.CustomerQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.CustomerQueries, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cookieCfg: cookieCfg}
}

// @Summary Register customer
// @Description Create a customer account and sign it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortMapped(c, err, authErrorRules)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary Customer login
// @Description Login with username and password. The token is returned and set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortMapped(c, err, authErrorRules)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Validate token
// @Description Return the customer the presented token belongs to
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetCurrentCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortMapped(c, err, authErrorRules)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view, middleware.GetAccessToken(c)))
}

// @Summary Logout
// @Description Clear the access token cookie. Bearer tokens stay valid until they expire.
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
