package airports

import (
	"github.com/flightfolio/core/internal/pkg/pagination"
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
	g := rg.Group("/airports")

	g.GET("", h.list)
	g.GET("/:code", h.get)
	g.GET("/:code/coordinates", h.coordinates)

	a := g.Group("", authMW)
	a.PUT("/import", h.importAirports)
}

// GET /airports?search=
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q, c.Query("search"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// GET /airports/:code
func (h *Handler) get(c *gin.Context) {
	a, err := h.svc.GetByCode(c.Param("code"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "airport not found")
		return
	}
	response.OK(c, a)
}

// GET /airports/:code/coordinates — always answers, flagging hash fallbacks.
func (h *Handler) coordinates(c *gin.Context) {
	code := c.Param("code")
	r := h.svc.Resolver()
	point := r.CoordinatesFor(code)
	response.OK(c, coordinatesResponse{
		Code:        code,
		Coordinates: [2]float64{point.Lon(), point.Lat()},
		Resolved:    r.HasCoordinates(code),
	})
}

// PUT /airports/import — bulk upsert
func (h *Handler) importAirports(c *gin.Context) {
	var dto ImportAirportsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.svc.Upsert(dto.Airports)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"imported": n})
}
