package stats

import (
	"github.com/flightfolio/core/internal/middleware"
	"github.com/flightfolio/core/internal/modules/flights"
	"github.com/flightfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	flights *flights.Service
}

func NewHandler(flightSvc *flights.Service) *Handler {
	return &Handler{flights: flightSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/flights/stats", authMW, h.summary)
}

// GET /flights/stats — honors the same filter dimensions as the flight list.
func (h *Handler) summary(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	list, err := h.flights.AllFiltered(userID, flights.FilterFromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	summary := Build(list)
	response.OK(c, &summary)
}
