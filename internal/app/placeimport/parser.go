package placeimport

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

// Record is one place read from the input.
type Record struct {
	Ref      string
	Line     int
	Location domain.Location
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines int
	Parsed     int
	Skipped    int // blank and comment lines
	Malformed  int
}

type rawRecord struct {
	Ref      string   `json:"ref"`
	Location []string `json:"location"`
	Place    *string  `json:"place"`
}

var (
	errNoLocation      = errors.New(`either "location" or "place" is required`)
	errBothLocations   = errors.New(`"location" and "place" are mutually exclusive`)
	errLocationTooLong = fmt.Errorf("location has more than %d segments", domain.LocationLevels)
	errFormMismatch    = errors.New("place text does not match the place form")
)

// ParseFile reads a JSON Lines file of places. See Parse.
func ParseFile(path string, form Form, log *slog.Logger) ([]Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f, form, log)
}

// Parse reads JSON Lines records from r. Each line carries either an explicit
// "location" tuple (street first, country last) or a "place" text decoded
// with form. Blank lines and lines starting with # are skipped. Malformed
// lines are logged and counted but do not stop parsing.
func Parse(r io.Reader, form Form, log *slog.Logger) ([]Record, Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		records []Record
		stats   Stats
	)

	for scanner.Scan() {
		stats.TotalLines++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			stats.Skipped++
			continue
		}

		rec, err := parseLine(line, form)
		if err != nil {
			stats.Malformed++
			log.Warn("malformed place record",
				slog.Int("line", stats.TotalLines),
				slog.String("error", err.Error()),
			)
			continue
		}

		rec.Line = stats.TotalLines
		records = append(records, rec)
		stats.Parsed++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scanner error: %w", err)
	}

	return records, stats, nil
}

func parseLine(line string, form Form) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{}, fmt.Errorf("decode json: %w", err)
	}

	rec := Record{Ref: raw.Ref}

	switch {
	case raw.Location != nil && raw.Place != nil:
		return Record{}, errBothLocations
	case raw.Location != nil:
		if len(raw.Location) > domain.LocationLevels {
			return Record{}, errLocationTooLong
		}
		rec.Location = domain.NewLocation(raw.Location...)
	case raw.Place != nil:
		loc, ok := form.Decode(*raw.Place)
		if !ok {
			return Record{}, fmt.Errorf("%w: %q", errFormMismatch, *raw.Place)
		}
		rec.Location = loc
	default:
		return Record{}, errNoLocation
	}

	return rec, nil
}
