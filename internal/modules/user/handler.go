package user

import (
	"time"

	"github.com/flightfolio/core/internal/middleware"
	"github.com/flightfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/user", authMW)

	g.GET("", h.profile)
	g.PATCH("", h.update)
	g.GET("/tokens", h.listTokens)
	g.POST("/tokens", h.createToken)
	g.DELETE("/tokens/:id", h.deleteToken)
}

// GET /user
func (h *Handler) profile(c *gin.Context) {
	user, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.NotFoundMsg(c, err.Error())
		return
	}
	response.OK(c, user)
}

// PATCH /user
func (h *Handler) update(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateProfile(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, user)
}

// GET /user/tokens
func (h *Handler) listTokens(c *gin.Context) {
	tokens, err := h.svc.ListTokens(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	for i := range tokens {
		tokens[i].Token = maskToken(tokens[i].Token)
	}
	response.OK(c, tokens)
}

type createTokenDTO struct {
	Name      string     `json:"name" binding:"required"`
	ExpiredAt *time.Time `json:"expired_at"`
}

// POST /user/tokens — the full token value is only returned here.
func (h *Handler) createToken(c *gin.Context) {
	var dto createTokenDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.svc.CreateToken(middleware.CurrentUserID(c), dto.Name, dto.ExpiredAt)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, token)
}

// DELETE /user/tokens/:id
func (h *Handler) deleteToken(c *gin.Context) {
	if err := h.svc.DeleteToken(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.NotFoundMsg(c, err.Error())
		return
	}
	response.NoContent(c)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "****"
}
