package handler

import (
	"errors"
	"net/http"
	"time"

	"shortlink-core/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SyncHandler serves the two endpoints consumed by the edge/redirector
// service: the active-path projection it caches, and bulk access-log
// ingestion.
type SyncHandler struct {
	db *gorm.DB
}

func NewSyncHandler(db *gorm.DB) *SyncHandler {
	return &SyncHandler{db: db}
}

// ActivePath is the projection the edge service caches locally.
type ActivePath struct {
	ShortPath   string `json:"short_path"`
	OriginalURL string `json:"original_url"`
	Hostname    string `json:"hostname"`
}

// ListActivePaths godoc
// @Summary List active paths
// @Description Returns every active short path with its original URL and owning hostname
// @Tags Sync
// @Security ApiKeyAuth
// @Produce  json
// @Success 200 {array} ActivePath
// @Failure 401 {object} gin.H "Missing API token"
// @Failure 403 {object} gin.H "Invalid API token"
// @Failure 500 {object} gin.H "Server error"
// @Router /internal/sync/paths [get]
func (h *SyncHandler) ListActivePaths(c *gin.Context) {
	paths := make([]ActivePath, 0)
	err := h.db.Model(&model.Path{}).
		Select("paths.short_path, paths.original_url, domains.hostname").
		Joins("JOIN domains ON domains.id = paths.domain_id").
		Where("paths.is_active = ?", true).
		Scan(&paths).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, paths)
}

// LogEntry is one access event pushed by the edge service.
type LogEntry struct {
	Hostname  string     `json:"hostname"`
	ShortPath string     `json:"short_path"`
	IPAddress string     `json:"ip_address"`
	UserAgent string     `json:"user_agent"`
	Country   string     `json:"country"`
	Timestamp *time.Time `json:"timestamp"`
}

// IngestLogs godoc
// @Summary Ingest access logs in bulk
// @Description Writes a batch of access logs atomically; entries referencing unknown hostnames or paths are dropped
// @Tags Sync
// @Security ApiKeyAuth
// @Accept  json
// @Produce  json
// @Param   logs  body  []LogEntry  true  "Access log batch"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H "Body is not an array"
// @Failure 401 {object} gin.H "Missing API token"
// @Failure 403 {object} gin.H "Invalid API token"
// @Failure 500 {object} gin.H "Transaction failure, batch rolled back"
// @Router /internal/sync/logs [post]
func (h *SyncHandler) IngestLogs(c *gin.Context) {
	var entries []LogEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format"})
		return
	}

	// One transaction for the whole batch: either every resolvable entry is
	// committed or none survive. The edge service retries the entire batch on
	// failure, so duplicate rows from a retry are accepted.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			var domain model.Domain
			if err := tx.Where("hostname = ?", entry.Hostname).First(&domain).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// The edge cache may be ahead of or behind the admin
					// state; unresolvable entries are dropped, not errors.
					zap.S().Debugf("dropping log entry for unknown hostname %q", entry.Hostname)
					continue
				}
				return err
			}

			var path model.Path
			if err := tx.Where("domain_id = ? AND short_path = ?", domain.ID, entry.ShortPath).First(&path).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					zap.S().Debugf("dropping log entry for unknown path %q on %q", entry.ShortPath, entry.Hostname)
					continue
				}
				return err
			}

			timestamp := time.Now()
			if entry.Timestamp != nil {
				timestamp = *entry.Timestamp
			}

			accessLog := model.AccessLog{
				PathID:    path.ID,
				IPAddress: entry.IPAddress,
				UserAgent: entry.UserAgent,
				Country:   entry.Country,
				Timestamp: timestamp,
			}
			if err := tx.Create(&accessLog).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.S().Errorf("log ingestion failed, batch rolled back: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
