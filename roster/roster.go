// Package roster reads the list of players from a JSON or CSV file.
//
// JSON rosters are arrays of {"name", "score", "category"} objects. CSV
// rosters have one "name,score,category" row per player, with an optional
// header row. Scores that are not numbers become 0, which the draft service
// treats as a blank row.
package roster

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"team-draft/domain"
	"team-draft/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
)

type jsonPlayer struct {
	Name     string `json:"name"`
	Score    any    `json:"score"`
	Category string `json:"category"`
}

// Load reads and parses a roster file.
func Load(path string) ([]domain.PlayerEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	players, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}
	return players, nil
}

// Parse sniffs the content type and decodes the roster accordingly.
func Parse(data []byte) ([]domain.PlayerEntry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	format, err := Detect(data)
	if err != nil {
		return nil, err
	}
	switch format {
	case JSON:
		return parseJSON(data)
	default:
		return parseCSV(data)
	}
}

// Detect reports the roster format. Any text that is not JSON is read as CSV.
func Detect(data []byte) (Format, error) {
	mime := mimetype.Detect(data)
	switch {
	case mime.Is("application/json"):
		return JSON, nil
	case bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) && json.Valid(data):
		// Sniffing only reads a prefix; a long array can be cut before it closes.
		// A CSV name may also start with a bracket, hence the full check.
		return JSON, nil
	case isText(mime):
		return CSV, nil
	default:
		return "", fmt.Errorf("%w: detected %s", errors.ErrUnsupportedRoster, mime.String())
	}
}

func isText(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func parseJSON(data []byte) ([]domain.PlayerEntry, error) {
	var players []jsonPlayer
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, err
	}
	return lo.Map(players, func(p jsonPlayer, _ int) domain.PlayerEntry {
		return entry(p.Name, scoreOf(p.Score), p.Category)
	}), nil
}

func parseCSV(data []byte) ([]domain.PlayerEntry, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}

	return lo.Map(records, func(record []string, _ int) domain.PlayerEntry {
		name, score, category := field(record, 0), field(record, 1), field(record, 2)
		return entry(name, scoreOf(score), category)
	}), nil
}

func isHeader(record []string) bool {
	return strings.EqualFold(field(record, 0), "name") && strings.EqualFold(field(record, 1), "score")
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func entry(name string, score int, category string) domain.PlayerEntry {
	return domain.PlayerEntry{
		Name:     strings.TrimSpace(name),
		Score:    score,
		Category: domain.Category(strings.ToUpper(strings.TrimSpace(category))),
	}
}

// scoreOf keeps the integer part of numeric input and maps anything else to 0.
func scoreOf(raw any) int {
	switch v := raw.(type) {
	case float64:
		return int(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}
