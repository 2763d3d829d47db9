package seed

import (
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
	rg.POST("/seed/demo", authMW, h.demo)
}

// POST /seed/demo
func (h *Handler) demo(c *gin.Context) {
	result, err := h.svc.LoadDemo(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, result)
}
