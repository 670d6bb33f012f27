package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurnosApp/turnos-api/internal/httperr"
	"github.com/TurnosApp/turnos-api/internal/httpresp"
	"github.com/TurnosApp/turnos-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Error interno del servidor al obtener la auditoría.")
		return
	}

	httpresp.List(c, logs)
}
