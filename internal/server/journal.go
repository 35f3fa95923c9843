package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

func (s *Server) handleListJournalEntries(c *gin.Context) {
	entries, err := s.store.Journal.GetAll()
	if err != nil {
		s.log.Error("Failed to list journal entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal entries"})
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleGetJournalEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := s.store.Journal.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		s.log.Error("Failed to get journal entry", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal entry"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleJournalEntriesByDate(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	entries, err := s.store.Journal.GetByDate(date)
	if err != nil {
		s.log.Error("Failed to list journal entries by date", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal entries by date"})
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleCreateJournalEntry(c *gin.Context) {
	var input models.JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.store.Journal.Create(input)
	if err != nil {
		s.log.Error("Failed to create journal entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleUpdateJournalEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update models.JournalEntryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.store.Journal.Update(id, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		s.log.Error("Failed to update journal entry", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journal entry"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleDeleteJournalEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.store.Journal.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		s.log.Error("Failed to delete journal entry", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal entry"})
		return
	}
	c.Status(http.StatusNoContent)
}
