package activity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nagi609/Clinic-Management-System/internal/handler"
	"github.com/Nagi609/Clinic-Management-System/internal/service/activity"
)

type Handler struct {
	service *activity.Service
}

func NewHandler(service *activity.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/activities", h.ListActivities)
}

func (h *Handler) ListActivities(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	activities, err := h.service.ListRecent(c.Request.Context(), userID)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(activities))
}
