package importer

import (
	"bytes"
	"errors"
	"io"

	"github.com/flightfolio/core/internal/middleware"
	"github.com/flightfolio/core/internal/pkg/response"
	"github.com/flightfolio/core/internal/pkg/taskqueue"
	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/import", authMW)

	g.POST("/flights", h.importFlights)
	g.GET("/tasks/:id", h.task)
}

// POST /import/flights — CSV via multipart "file" or raw request body.
// ?async=1 returns a task id to poll instead of blocking on the import.
func (h *Handler) importFlights(c *gin.Context) {
	data, err := h.readCSV(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(data) == 0 {
		response.BadRequest(c, "empty import payload")
		return
	}

	userID := middleware.CurrentUserID(c)

	if c.Query("async") == "1" {
		task, err := h.svc.ImportCSVAsync(c.Request.Context(), userID, data)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"task_id": task.ID, "status": task.Status})
		return
	}

	result, err := h.svc.ImportCSV(userID, bytes.NewReader(data))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, result)
}

// GET /import/tasks/:id
func (h *Handler) task(c *gin.Context) {
	task, err := h.svc.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, taskqueue.ErrTaskNotFound) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, task)
}

func (h *Handler) readCSV(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		if file.Size > maxUploadBytes {
			return nil, errors.New("file too large")
		}
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxUploadBytes))
	}
	return io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
}
