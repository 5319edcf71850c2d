package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Nagi609/Clinic-Management-System/internal/handler"
	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/service/contact"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type Handler struct {
	service contact.ContactService
}

func NewHandler(service contact.ContactService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	contacts := r.Group("/contacts")
	{
		contacts.POST("", h.CreateContact)
		contacts.GET("", h.ListContacts)
		contacts.PUT("/:id", h.UpdateContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}

	clinicContacts := r.Group("/clinic-contacts")
	{
		clinicContacts.POST("", h.CreateClinicContact)
		clinicContacts.GET("", h.ListClinicContacts)
		clinicContacts.PUT("/:id", h.UpdateClinicContact)
		clinicContacts.DELETE("/:id", h.DeleteClinicContact)
	}
}

func (h *Handler) CreateContact(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateContact(c.Request.Context(), userID, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListContacts(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	contacts, err := h.service.ListContacts(c.Request.Context(), userID)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(contacts))
}

func (h *Handler) UpdateContact(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.WriteError(c, apperror.NotFound("contact"))
		return
	}

	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateContact(c.Request.Context(), userID, id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteContact(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.WriteError(c, apperror.NotFound("contact"))
		return
	}

	if err := h.service.DeleteContact(c.Request.Context(), userID, id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": true}))
}

func (h *Handler) CreateClinicContact(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	var req model.ClinicContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateClinicContact(c.Request.Context(), userID, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListClinicContacts(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	contacts, err := h.service.ListClinicContacts(c.Request.Context(), userID)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(contacts))
}

func (h *Handler) UpdateClinicContact(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.WriteError(c, apperror.NotFound("clinic contact"))
		return
	}

	var req model.ClinicContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateClinicContact(c.Request.Context(), userID, id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteClinicContact(c *gin.Context) {
	userID, ok := handler.MustUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.WriteError(c, apperror.NotFound("clinic contact"))
		return
	}

	if err := h.service.DeleteClinicContact(c.Request.Context(), userID, id); err != nil {
		handler.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": true}))
}
