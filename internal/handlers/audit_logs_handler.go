package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/httpresp"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, loc: loc}
}

// List pages through the audit trail, newest first. Filters: action,
// entity, actorId, from and to (YYYY-MM-DD, inclusive).
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if actor := c.Query("actorId"); actor != "" {
		actorID, err := uuid.Parse(actor)
		if err != nil {
			httperr.BadRequest(c, "invalid_actor_id", "Invalid actorId")
			return
		}
		q = q.Where("actor_id = ?", actorID)
	}

	if from, ok := parseDay(c.Query("from"), h.loc); ok {
		q = q.Where("created_at >= ?", from)
	}

	if to, ok := parseDay(c.Query("to"), h.loc); ok {
		q = q.Where("created_at < ?", endOfDay(to))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Failed to count audit logs")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs")
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
