package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/models"
	"trade-journal-go/internal/stats"
	"trade-journal-go/internal/storage/memory"
)

func strPtr(s string) *string {
	return &s
}

// newTestServer builds a server over a fresh in-memory store.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.Server{
			Port:           0,
			RateLimit:      1000,
			RateLimitBurst: 1000,
		},
	}
	return New(zap.NewNop(), cfg, memory.New())
}

func doJSON(t *testing.T, s *Server, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func createTrade(t *testing.T, s *Server, input models.TradeInput) models.Trade {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/trades", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var trade models.Trade
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trade))
	return trade
}

func TestCreateTrade_AppliesDefaultsAndComputesPnL(t *testing.T) {
	s := newTestServer(t)

	trade := createTrade(t, s, models.TradeInput{
		Symbol:     "ES",
		Direction:  models.DirectionLong,
		EntryPrice: "100",
		ExitPrice:  strPtr("110"),
		Quantity:   "10",
		EntryTime:  time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		Status:     strPtr(models.StatusClosed),
	})

	assert.Equal(t, 1, trade.ID)
	assert.Equal(t, "0", trade.Fees)
	assert.Equal(t, models.DefaultAccount, trade.Account)
	require.NotNil(t, trade.PnL)
	assert.Equal(t, "100.00", *trade.PnL)
}

func TestCreateTrade_ValidationFailure(t *testing.T) {
	s := newTestServer(t)

	// Missing symbol and direction.
	w := doJSON(t, s, http.MethodPost, "/api/trades", map[string]any{
		"entryPrice": "100",
		"quantity":   "10",
		"entryTime":  "2024-02-01T09:30:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetTrade_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/trades/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTrades_FilterBySymbol(t *testing.T) {
	s := newTestServer(t)
	createTrade(t, s, models.TradeInput{
		Symbol: "ES", Direction: models.DirectionLong,
		EntryPrice: "100", Quantity: "1", EntryTime: time.Now().UTC(),
	})
	createTrade(t, s, models.TradeInput{
		Symbol: "NQ", Direction: models.DirectionShort,
		EntryPrice: "18000", Quantity: "1", EntryTime: time.Now().UTC(),
	})

	w := doJSON(t, s, http.MethodGet, "/api/trades?symbol=NQ", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var trades []models.Trade
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trades))
	require.Len(t, trades, 1)
	assert.Equal(t, "NQ", trades[0].Symbol)
}

func TestUpdateTrade_ExitPriceAloneComputesPnL(t *testing.T) {
	s := newTestServer(t)
	trade := createTrade(t, s, models.TradeInput{
		Symbol: "ES", Direction: models.DirectionShort,
		EntryPrice: "100", Quantity: "10", EntryTime: time.Now().UTC(),
	})
	require.Nil(t, trade.PnL)

	w := doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/trades/%d", trade.ID), map[string]any{
		"exitPrice": "95",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Trade
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.PnL)
	assert.Equal(t, "50.00", *updated.PnL)
	// The trade stays open until the caller closes it explicitly.
	assert.Equal(t, models.StatusOpen, updated.Status)
}

func TestDeleteTrade(t *testing.T) {
	s := newTestServer(t)
	trade := createTrade(t, s, models.TradeInput{
		Symbol: "ES", Direction: models.DirectionLong,
		EntryPrice: "100", Quantity: "1", EntryTime: time.Now().UTC(),
	})

	w := doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/trades/%d", trade.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/trades/%d", trade.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStats_TwoTradeScenario(t *testing.T) {
	s := newTestServer(t)
	entry := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	createTrade(t, s, models.TradeInput{
		Symbol: "ES", Direction: models.DirectionLong,
		EntryPrice: "100", ExitPrice: strPtr("110"), Quantity: "10",
		EntryTime: entry, Status: strPtr(models.StatusClosed),
	})
	createTrade(t, s, models.TradeInput{
		Symbol: "ES", Direction: models.DirectionLong,
		EntryPrice: "100", ExitPrice: strPtr("95"), Quantity: "10",
		EntryTime: entry.Add(time.Hour), Status: strPtr(models.StatusClosed),
	})

	w := doJSON(t, s, http.MethodGet, "/api/stats?startDate=2024-03-01&endDate=2024-03-31", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 2, snap.TotalTrades)
	assert.Equal(t, 1, snap.WinningTrades)
	assert.Equal(t, 1, snap.LosingTrades)
	assert.Equal(t, 50.0, snap.WinRate)
	assert.Equal(t, 50.0, snap.TotalPnL)
	assert.Equal(t, 2.0, snap.ProfitFactor)
}

func TestStats_EmptyRange(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/stats?startDate=2020-01-01&endDate=2020-01-31", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, stats.Snapshot{}, snap)
}

func TestStats_InvalidDate(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/stats?startDate=yesterday", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportTrades(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "trades.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(
		"symbol,direction,entryPrice,exitPrice,quantity,entryTime,status\n" +
			"ES,long,100,110,10,2024-02-01T09:30:00Z,closed\n" +
			"ES,diagonal,100,110,10,2024-02-01T09:30:00Z,closed\n",
	))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/trades/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result struct {
		Imported int `json:"imported"`
		Errors   []struct {
			Line int `json:"line"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Line)

	trades, err := s.store.Trades.GetAll()
	require.NoError(t, err)
	assert.Len(t, trades, 1)
}

func TestJournalByDate(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/journal", map[string]any{
		"date":    "2024-03-05T14:00:00Z",
		"title":   "FOMC day",
		"content": "Stayed flat into the release.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, s, http.MethodGet, "/api/journal/date/2024-03-05", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "FOMC day", entries[0].Title)
	assert.Equal(t, models.DefaultMood, entries[0].Mood)
}

func TestNotesByFolder(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/notes/folder/Daily%20Journal", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var notes []models.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Daily Journal", notes[0].Folder)
}

func TestPlaybookCRUD(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/playbooks", map[string]any{
		"name":  "Opening range breakout",
		"rules": map[string]any{"entries": []string{"break of OR high"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var playbook models.Playbook
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &playbook))

	w = doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/playbooks/%d", playbook.ID), map[string]any{
		"name": "ORB v2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/playbooks/%d", playbook.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/trades", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
