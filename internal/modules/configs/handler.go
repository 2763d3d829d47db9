package configs

import (
	"encoding/json"
	"io"

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
	g := rg.Group("/options", authMW)

	g.GET("", h.get)
	g.PATCH("", h.patch)
}

// GET /options
func (h *Handler) get(c *gin.Context) {
	cfg := h.svc.Get()
	redactSecrets(&cfg)
	response.OK(c, &cfg)
}

// PATCH /options — partial JSON merge into the settings document.
func (h *Handler) patch(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cfg, err := h.svc.Patch(json.RawMessage(body))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out := *cfg
	redactSecrets(&out)
	response.OK(c, &out)
}
