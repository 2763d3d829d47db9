package airlines

import (
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
	g := rg.Group("/airlines")

	g.GET("", h.list)
	g.GET("/:code", h.get)

	a := g.Group("", authMW)
	a.PUT("/:code", h.upsert)
	a.POST("/import", h.importAirlines)
}

// GET /airlines
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// GET /airlines/:code
func (h *Handler) get(c *gin.Context) {
	a, err := h.svc.GetByCode(c.Param("code"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "airline not found")
		return
	}
	response.OK(c, a)
}

// PUT /airlines/:code — create or curate
func (h *Handler) upsert(c *gin.Context) {
	var dto UpsertAirlineDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Upsert(c.Param("code"), &dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, a)
}

// POST /airlines/import
func (h *Handler) importAirlines(c *gin.Context) {
	var dto ImportAirlinesDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.svc.Import(dto.Airlines)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"imported": n})
}
