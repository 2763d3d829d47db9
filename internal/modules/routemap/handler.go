package routemap

import (
	"context"
	"fmt"
	"time"

	"github.com/flightfolio/core/internal/config"
	"github.com/flightfolio/core/internal/middleware"
	"github.com/flightfolio/core/internal/modules/flights"
	"github.com/flightfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Uploader stores a rendered export and returns its public URL.
// Nil means exports are returned inline.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// OptionsSource supplies the current renderer options.
type OptionsSource func() config.MapOptions

type Handler struct {
	engine   *Engine
	flights  *flights.Service
	options  OptionsSource
	uploader Uploader
}

func NewHandler(engine *Engine, flightSvc *flights.Service, options OptionsSource, uploader Uploader) *Handler {
	return &Handler{engine: engine, flights: flightSvc, options: options, uploader: uploader}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/map", authMW)

	g.GET("/features", h.features)
	g.POST("/export", h.export)
}

// GET /map/features — the render model for the current filter state.
func (h *Handler) features(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	list, err := h.flights.AllFiltered(userID, flights.FilterFromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	snap := h.engine.BuildSnapshot(list, h.options())
	response.OK(c, &snap)
}

type exportDTO struct {
	Mode string `json:"mode"` // "normal" (default) | "minimal"
}

// POST /map/export — rasterize the current filter state to PNG. With an
// uploader configured the image lands in object storage and the URL is
// returned; otherwise the PNG comes back inline.
func (h *Handler) export(c *gin.Context) {
	var dto exportDTO
	if err := c.ShouldBindJSON(&dto); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, err.Error())
		return
	}
	mode := CaptureMode(dto.Mode)
	if mode == "" {
		mode = CaptureNormal
	}

	userID := middleware.CurrentUserID(c)
	list, err := h.flights.AllFiltered(userID, flights.FilterFromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	view := NewMapView()
	if err := view.Init(h.engine.BuildSnapshot(list, h.options()), h.options()); err != nil {
		response.InternalError(c, err)
		return
	}
	defer view.Dispose()

	data, err := view.Capture(mode)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if h.uploader != nil {
		key := fmt.Sprintf("exports/%s/map-%d.png", userID, time.Now().UTC().Unix())
		url, err := h.uploader.Upload(c.Request.Context(), key, "image/png", data)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"url": url, "mode": string(mode), "bytes": len(data)})
		return
	}

	c.Data(200, "image/png", data)
}
