package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trade-journal-go/internal/stats"
)

const dateLayout = "2006-01-02"

// handleStats aggregates performance over a date range, defaulting to the
// trailing 30 days. The end date is always extended to end-of-day so a
// range given in plain dates includes its final day's trades.
func (s *Server) handleStats(c *gin.Context) {
	now := time.Now()
	start := startOfDay(now.AddDate(0, 0, -30))
	end := endOfDay(now)

	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
			return
		}
		start = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		end = endOfDay(t)
	}

	trades, err := s.store.Trades.GetByDateRange(start, end)
	if err != nil {
		s.log.Error("Failed to fetch trades for stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats.Compute(trades))
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
