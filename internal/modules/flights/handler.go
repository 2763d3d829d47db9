package flights

import (
	"bytes"
	"errors"

	"github.com/flightfolio/core/internal/middleware"
	"github.com/flightfolio/core/internal/pkg/pagination"
	"github.com/flightfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Handler struct {
	svc      *Service
	markdown goldmark.Markdown
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc: svc,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/flights", authMW)

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.PATCH("/:id/carbon-offset", h.carbonOffset)
	g.GET("/:id/journal", h.journal)
}

// GET /flights — filter dimensions come from the query string.
func (h *Handler) list(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	views, pag, err := h.svc.ListFiltered(userID, FilterFromContext(c), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, views, pag)
}

// POST /flights
func (h *Handler) create(c *gin.Context) {
	var dto CreateFlightDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	v := toView(f)
	response.Created(c, &v)
}

// GET /flights/:id
func (h *Handler) get(c *gin.Context) {
	f, err := h.svc.GetByID(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.flightError(c, err)
		return
	}
	v := toView(f)
	response.OK(c, &v)
}

// PATCH /flights/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateFlightDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		h.flightError(c, err)
		return
	}
	v := toView(f)
	response.OK(c, &v)
}

// DELETE /flights/:id
func (h *Handler) remove(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		h.flightError(c, err)
		return
	}
	response.NoContent(c)
}

// PATCH /flights/:id/carbon-offset
func (h *Handler) carbonOffset(c *gin.Context) {
	var dto CarbonOffsetDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.SetCarbonOffset(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		h.flightError(c, err)
		return
	}
	v := toView(f)
	response.OK(c, &v)
}

// GET /flights/:id/journal — journal markdown rendered to HTML.
func (h *Handler) journal(c *gin.Context) {
	f, err := h.svc.GetByID(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.flightError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(f.Journal), &buf); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"id": f.ID, "html": buf.String()})
}

func (h *Handler) flightError(c *gin.Context, err error) {
	if errors.Is(err, errFlightNotFound) {
		response.NotFoundMsg(c, err.Error())
		return
	}
	if errors.Is(err, errInvalidDate) || errors.Is(err, errInvalidCode) {
		response.BadRequest(c, err.Error())
		return
	}
	response.InternalError(c, err)
}
