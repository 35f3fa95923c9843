package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

func (s *Server) handleListPlaybooks(c *gin.Context) {
	playbooks, err := s.store.Playbooks.GetAll()
	if err != nil {
		s.log.Error("Failed to list playbooks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch playbooks"})
		return
	}
	if playbooks == nil {
		playbooks = []models.Playbook{}
	}
	c.JSON(http.StatusOK, playbooks)
}

func (s *Server) handleGetPlaybook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	playbook, err := s.store.Playbooks.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playbook not found"})
			return
		}
		s.log.Error("Failed to get playbook", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch playbook"})
		return
	}
	c.JSON(http.StatusOK, playbook)
}

func (s *Server) handleCreatePlaybook(c *gin.Context) {
	var input models.PlaybookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	playbook, err := s.store.Playbooks.Create(input)
	if err != nil {
		s.log.Error("Failed to create playbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create playbook"})
		return
	}
	c.JSON(http.StatusCreated, playbook)
}

func (s *Server) handleUpdatePlaybook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update models.PlaybookUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	playbook, err := s.store.Playbooks.Update(id, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playbook not found"})
			return
		}
		s.log.Error("Failed to update playbook", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update playbook"})
		return
	}
	c.JSON(http.StatusOK, playbook)
}

func (s *Server) handleDeletePlaybook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.store.Playbooks.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playbook not found"})
			return
		}
		s.log.Error("Failed to delete playbook", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete playbook"})
		return
	}
	c.Status(http.StatusNoContent)
}
