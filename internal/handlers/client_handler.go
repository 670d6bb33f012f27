package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
	"github.com/TurnosApp/turnos-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	Name        string `json:"nombre" binding:"required"`
	Phone       string `json:"telefono"`
	Preferences string `json:"preferencias"`
}

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Order("nombre ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Error interno del servidor al obtener clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID de cliente inválido. Debe ser un número.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos del cliente inválidos o faltantes.")
		return
	}

	client := models.Client{
		Name:        req.Name,
		Phone:       req.Phone,
		Preferences: req.Preferences,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Error interno del servidor al agregar el cliente.")
		return
	}

	c.JSON(201, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID de cliente inválido. Debe ser un número.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Los datos del cliente no son válidos.")
		return
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Preferences = req.Preferences

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error interno del servidor al modificar el cliente.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID de cliente inválido. Debe ser un número.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado para eliminar.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Error interno del servidor al eliminar el cliente.")
		return
	}

	httpresp.OK(c, gin.H{"mensaje": "Cliente eliminado con éxito."})
}
