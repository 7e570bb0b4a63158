package middleware

import (
	"context"
	"log"
	"time"

	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/repository"
	"github.com/gin-gonic/gin"
)

// Buffered channel for async access logging
var logChannel chan models.RequestLog

// Starts the background worker that batch-inserts access log rows.
func InitAccessLog(repo *repository.RequestLogRepository, bufferSize int) {
	logChannel = make(chan models.RequestLog, bufferSize)

	go func() {
		batch := make([]models.RequestLog, 0, 100)
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case entry := <-logChannel:
				batch = append(batch, entry)

				// Insert when batch is full
				if len(batch) >= 100 {
					insertBatch(repo, batch)
					batch = make([]models.RequestLog, 0, 100)
				}
			case <-ticker.C:
				// Periodically insert remaining logs
				if len(batch) > 0 {
					insertBatch(repo, batch)
					batch = make([]models.RequestLog, 0, 100)
				}
			}
		}
	}()
}

func insertBatch(repo *repository.RequestLogRepository, logs []models.RequestLog) {
	if err := repo.CreateBatch(context.Background(), logs); err != nil {
		log.Printf("Failed to insert access logs: %v", err)
	}
}

// Records every request to the access log table
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)

		entry := models.RequestLog{
			Timestamp:      start,
			Method:         c.Request.Method,
			Path:           c.Request.URL.Path,
			StatusCode:     c.Writer.Status(),
			ResponseTimeMs: int(duration.Milliseconds()),
			IPAddress:      c.ClientIP(),
			UserAgent:      c.Request.UserAgent(),
		}

		if user := UserFrom(c); user != nil {
			id := user.ID
			entry.UserID = &id
		}

		select {
		case logChannel <- entry:
		default:
			// Channel full, skip rather than block the request
		}
	}
}
