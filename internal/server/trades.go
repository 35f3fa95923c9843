package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trade-journal-go/internal/importer"
	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

func (s *Server) handleListTrades(c *gin.Context) {
	var (
		trades []models.Trade
		err    error
	)
	if symbol := c.Query("symbol"); symbol != "" {
		trades, err = s.store.Trades.GetBySymbol(symbol)
	} else {
		trades, err = s.store.Trades.GetAll()
	}
	if err != nil {
		s.log.Error("Failed to list trades", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trades"})
		return
	}
	if trades == nil {
		trades = []models.Trade{}
	}
	c.JSON(http.StatusOK, trades)
}

func (s *Server) handleGetTrade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	trade, err := s.store.Trades.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
			return
		}
		s.log.Error("Failed to get trade", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trade"})
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (s *Server) handleCreateTrade(c *gin.Context) {
	var input models.TradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trade, err := s.store.Trades.Create(input)
	if err != nil {
		s.log.Error("Failed to create trade", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trade"})
		return
	}
	c.JSON(http.StatusCreated, trade)
}

func (s *Server) handleUpdateTrade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update models.TradeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trade, err := s.store.Trades.Update(id, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
			return
		}
		s.log.Error("Failed to update trade", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trade"})
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (s *Server) handleDeleteTrade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.store.Trades.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
			return
		}
		s.log.Error("Failed to delete trade", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trade"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleImportTrades(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": `multipart file field "file" is required`})
		return
	}
	defer file.Close()

	inputs, rowErrors, err := importer.Parse(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imported := 0
	for _, input := range inputs {
		if _, err := s.store.Trades.Create(input); err != nil {
			s.log.Error("Failed to store imported trade", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import trades"})
			return
		}
		imported++
	}

	if rowErrors == nil {
		rowErrors = []importer.RowError{}
	}
	s.log.Info("Imported trades from CSV",
		zap.Int("imported", imported),
		zap.Int("skipped", len(rowErrors)),
	)
	c.JSON(http.StatusOK, gin.H{"imported": imported, "errors": rowErrors})
}
