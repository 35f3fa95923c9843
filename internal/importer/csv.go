// Package importer parses broker CSV exports into trade create payloads.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"trade-journal-go/internal/models"
)

// RowError reports why one CSV line could not be imported. Line numbers are
// 1-based and include the header line.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Supported columns. symbol, direction, entryPrice, quantity and entryTime
// are required; the rest may be blank or missing entirely.
var columns = []string{
	"symbol", "direction", "entryprice", "exitprice", "quantity",
	"entrytime", "exittime", "fees", "status", "account", "notes",
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse reads a CSV document with a header line and returns one TradeInput
// per parseable row plus a RowError for every row it had to skip. A read
// error on the underlying stream aborts the whole import.
func Parse(r io.Reader) ([]models.TradeInput, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	index := indexColumns(header)
	for _, required := range []string{"symbol", "direction", "entryprice", "quantity", "entrytime"} {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("CSV header is missing required column %q", required)
		}
	}

	var (
		inputs    []models.TradeInput
		rowErrors []RowError
		line      = 1
	)
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				rowErrors = append(rowErrors, RowError{Line: line, Message: err.Error()})
				continue
			}
			return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		input, err := parseRow(record, index)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Message: err.Error()})
			continue
		}
		inputs = append(inputs, input)
	}

	return inputs, rowErrors, nil
}

func indexColumns(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, known := range columns {
			if name == known {
				index[known] = i
				break
			}
		}
	}
	return index
}

func parseRow(record []string, index map[string]int) (models.TradeInput, error) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	optional := func(name string) *string {
		if v := cell(name); v != "" {
			return &v
		}
		return nil
	}

	input := models.TradeInput{
		Symbol:     cell("symbol"),
		Direction:  strings.ToLower(cell("direction")),
		EntryPrice: cell("entryprice"),
		Quantity:   cell("quantity"),
		ExitPrice:  optional("exitprice"),
		Fees:       optional("fees"),
		Account:    optional("account"),
		Notes:      optional("notes"),
	}

	if input.Symbol == "" {
		return models.TradeInput{}, fmt.Errorf("symbol is required")
	}
	if input.Direction != models.DirectionLong && input.Direction != models.DirectionShort {
		return models.TradeInput{}, fmt.Errorf("direction must be long or short, got %q", cell("direction"))
	}
	if input.EntryPrice == "" {
		return models.TradeInput{}, fmt.Errorf("entryPrice is required")
	}
	if input.Quantity == "" {
		return models.TradeInput{}, fmt.Errorf("quantity is required")
	}

	entryTime, err := parseTime(cell("entrytime"))
	if err != nil {
		return models.TradeInput{}, fmt.Errorf("invalid entryTime: %w", err)
	}
	input.EntryTime = entryTime

	if v := cell("exittime"); v != "" {
		exitTime, err := parseTime(v)
		if err != nil {
			return models.TradeInput{}, fmt.Errorf("invalid exitTime: %w", err)
		}
		input.ExitTime = &exitTime
	}

	if v := cell("status"); v != "" {
		v = strings.ToLower(v)
		if v != models.StatusOpen && v != models.StatusClosed {
			return models.TradeInput{}, fmt.Errorf("status must be open or closed, got %q", cell("status"))
		}
		input.Status = &v
	}

	return input, nil
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("value is empty")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %q", value)
}
