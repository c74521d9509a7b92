package handler

import (
	"net/http"
	"time"

	"shortlink-core/internal/model"
	"shortlink-core/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminHandler serves the admin CRUD surface: token issuance, domain and
// path registration, access-log history.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// HealthCheck reports process liveness.
func (h *AdminHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
}

type CreateTokenRequest struct {
	Name string `json:"name" binding:"required" example:"edge-eu-1"`
}

type CreateTokenResponse struct {
	Name  string `json:"name" example:"edge-eu-1"`
	Token string `json:"token" example:"9f86d081884c7d659a2feaa0c55ad015..."`
}

// CreateToken godoc
// @Summary Issue an API token
// @Description Generates a random shared-secret token for the internal sync endpoints
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param   key  body   CreateTokenRequest  true  "Token name"
// @Success 201 {object} CreateTokenResponse
// @Failure 400 {object} gin.H "Name is required"
// @Failure 500 {object} gin.H "Server error"
// @Router /admin/tokens [post]
func (h *AdminHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	secret, err := token.New()
	if err != nil {
		zap.S().Errorf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	apiKey := model.ApiKey{Name: req.Name, Token: secret}
	if err := h.db.Create(&apiKey).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CreateTokenResponse{Name: apiKey.Name, Token: apiKey.Token})
}

type CreateDomainRequest struct {
	Hostname string `json:"hostname" binding:"required" example:"example.com"`
}

// CreateDomain godoc
// @Summary Register a domain
// @Description Registers a hostname under which short paths resolve
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param   domain  body   CreateDomainRequest  true  "Domain hostname"
// @Success 201 {object} model.Domain
// @Failure 500 {object} gin.H "Server error, including duplicate hostname"
// @Router /admin/domains [post]
func (h *AdminHandler) CreateDomain(c *gin.Context) {
	var req CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hostname is required"})
		return
	}

	domain := model.Domain{Hostname: req.Hostname}
	if err := h.db.Create(&domain).Error; err != nil {
		// Uniqueness is enforced by the store; a duplicate hostname lands here.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, domain)
}

type CreatePathRequest struct {
	DomainID    uint   `json:"domain_id" binding:"required" example:"1"`
	ShortPath   string `json:"short_path" binding:"required" example:"abc"`
	OriginalURL string `json:"original_url" binding:"required" example:"https://example.org/landing"`
	IsActive    *bool  `json:"is_active"`
}

// CreatePath godoc
// @Summary Register a short path
// @Description Maps a short path to its original URL under an existing domain
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param   path  body   CreatePathRequest  true  "Path definition"
// @Success 201 {object} model.Path
// @Failure 500 {object} gin.H "Server error, including duplicate (domain_id, short_path)"
// @Router /admin/paths [post]
func (h *AdminHandler) CreatePath(c *gin.Context) {
	var req CreatePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	path := model.Path{
		DomainID:    req.DomainID,
		ShortPath:   req.ShortPath,
		OriginalURL: req.OriginalURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		path.IsActive = *req.IsActive
	}

	if err := h.db.Create(&path).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, path)
}

// GetAccessHistory godoc
// @Summary Access history for a path
// @Description Returns all access logs for the path, newest first
// @Tags Admin
// @Produce  json
// @Param   path_id  path  int  true  "Path ID"
// @Success 200 {array} model.AccessLog
// @Failure 500 {object} gin.H "Server error"
// @Router /admin/history/{path_id} [get]
func (h *AdminHandler) GetAccessHistory(c *gin.Context) {
	logs := make([]model.AccessLog, 0)
	err := h.db.
		Where("path_id = ?", c.Param("path_id")).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// A path with no traffic yields an empty array, not an error.
	c.JSON(http.StatusOK, logs)
}
