package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"shortlink-core/internal/middleware"
	"shortlink-core/internal/model"
	"shortlink-core/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// seedSyncFixtures issues an API key and registers example.com with one
// active path "abc". Returns the token and the path.
func seedSyncFixtures(t *testing.T, db *gorm.DB) (string, model.Path) {
	secret, err := token.New()
	assert.NoError(t, err)
	assert.NoError(t, db.Create(&model.ApiKey{Name: "test-edge", Token: secret}).Error)

	domain := model.Domain{Hostname: "example.com"}
	assert.NoError(t, db.Create(&domain).Error)
	path := model.Path{DomainID: domain.ID, ShortPath: "abc", OriginalURL: "https://example.org/landing", IsActive: true}
	assert.NoError(t, db.Create(&path).Error)

	return secret, path
}

func TestSyncAuthMissingToken(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	_, path := seedSyncFixtures(t, db)

	w := getJSON(router, "/internal/sync/paths", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(router, "/internal/sync/logs", []LogEntry{{Hostname: "example.com", ShortPath: path.ShortPath}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	db.Model(&model.AccessLog{}).Count(&count)
	assert.Zero(t, count, "an unauthenticated request must not write")
}

func TestSyncAuthInvalidToken(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	seedSyncFixtures(t, db)

	headers := map[string]string{middleware.TokenHeader: "not-a-real-token"}

	w := getJSON(router, "/internal/sync/paths", headers)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postJSON(router, "/internal/sync/logs", []LogEntry{{Hostname: "example.com", ShortPath: "abc"}}, headers)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.Model(&model.AccessLog{}).Count(&count)
	assert.Zero(t, count)
}

func TestListActivePaths(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	secret, _ := seedSyncFixtures(t, db)

	var domain model.Domain
	assert.NoError(t, db.Where("hostname = ?", "example.com").First(&domain).Error)
	inactive := model.Path{DomainID: domain.ID, ShortPath: "off", OriginalURL: "https://example.org/retired", IsActive: false}
	assert.NoError(t, db.Create(&inactive).Error)

	w := getJSON(router, "/internal/sync/paths", map[string]string{middleware.TokenHeader: secret})
	assert.Equal(t, http.StatusOK, w.Code)

	var paths []ActivePath
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &paths))
	assert.Len(t, paths, 1, "inactive paths must not be synced")
	assert.Equal(t, "abc", paths[0].ShortPath)
	assert.Equal(t, "https://example.org/landing", paths[0].OriginalURL)
	assert.Equal(t, "example.com", paths[0].Hostname)
}

func TestIngestLogsSingleEntry(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	secret, path := seedSyncFixtures(t, db)

	batch := []LogEntry{{Hostname: "example.com", ShortPath: "abc", IPAddress: "1.2.3.4"}}
	w := postJSON(router, "/internal/sync/logs", batch, map[string]string{middleware.TokenHeader: secret})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"])

	var logs []model.AccessLog
	assert.NoError(t, db.Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, path.ID, logs[0].PathID)
	assert.Equal(t, "1.2.3.4", logs[0].IPAddress)
	assert.False(t, logs[0].Timestamp.IsZero(), "omitted timestamp defaults to ingestion time")
}

func TestIngestLogsSuppliedTimestamp(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	secret, _ := seedSyncFixtures(t, db)

	supplied := time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)
	batch := []LogEntry{{Hostname: "example.com", ShortPath: "abc", Timestamp: &supplied}}
	w := postJSON(router, "/internal/sync/logs", batch, map[string]string{middleware.TokenHeader: secret})
	assert.Equal(t, http.StatusOK, w.Code)

	var log model.AccessLog
	assert.NoError(t, db.First(&log).Error)
	assert.True(t, log.Timestamp.Equal(supplied))
}

func TestIngestLogsSkipsUnresolvedEntries(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	secret, path := seedSyncFixtures(t, db)

	// The edge cache may reference domains or paths that no longer exist;
	// those entries are dropped without failing the batch.
	batch := []LogEntry{
		{Hostname: "gone.example.net", ShortPath: "abc", IPAddress: "5.6.7.8"},
		{Hostname: "example.com", ShortPath: "no-such-path", IPAddress: "5.6.7.8"},
		{Hostname: "example.com", ShortPath: "abc", IPAddress: "9.9.9.9"},
	}
	w := postJSON(router, "/internal/sync/logs", batch, map[string]string{middleware.TokenHeader: secret})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"], "unresolved entries are not errors")

	var logs []model.AccessLog
	assert.NoError(t, db.Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, path.ID, logs[0].PathID)
	assert.Equal(t, "9.9.9.9", logs[0].IPAddress)
}

func TestIngestLogsNonArrayBody(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	secret, _ := seedSyncFixtures(t, db)

	w := postJSON(router, "/internal/sync/logs",
		gin.H{"hostname": "example.com", "short_path": "abc"},
		map[string]string{middleware.TokenHeader: secret})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&model.AccessLog{}).Count(&count)
	assert.Zero(t, count, "a rejected body must not write")
}

func TestIngestLogsRollbackOnFailure(t *testing.T) {
	router, db, cleanup := setupTest(t)
	defer cleanup()
	secret, _ := seedSyncFixtures(t, db)

	// Simulate the store failing mid-batch: the third access-log insert errors.
	inserts := 0
	err := db.Callback().Create().Before("gorm:create").Register("fail_mid_batch", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "access_logs" {
			inserts++
			if inserts > 2 {
				tx.AddError(errors.New("simulated store failure"))
			}
		}
	})
	assert.NoError(t, err)
	defer db.Callback().Create().Remove("fail_mid_batch")

	batch := make([]LogEntry, 5)
	for i := range batch {
		batch[i] = LogEntry{Hostname: "example.com", ShortPath: "abc", IPAddress: "1.2.3.4"}
	}
	w := postJSON(router, "/internal/sync/logs", batch, map[string]string{middleware.TokenHeader: secret})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.GreaterOrEqual(t, inserts, 3, "failure must occur after some entries were staged")

	var count int64
	db.Model(&model.AccessLog{}).Count(&count)
	assert.Zero(t, count, "a failed batch must be rolled back in full")
}
