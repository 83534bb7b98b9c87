package phase

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Table is the date-indexed lookup of pre-rendered ephemeris rows, one per
// day. Read-only after load; Reload swaps the whole row map under the lock
// so readers never see a partial table.
type Table struct {
	path   string
	logger *zap.SugaredLogger

	mu   sync.RWMutex
	gen  uint64
	rows map[string]Record
}

// dateFormats accepted in the CSV's date column
var dateFormats = []string{"01/02/2006", "01/02/06", "2006-01-02"}

// LoadTable reads the phase CSV at path. Individual bad rows are skipped
// and logged; an unreadable file or empty result is an error, which callers
// treat as "run on the analytic fallback alone".
func LoadTable(path string, logger *zap.SugaredLogger) (*Table, error) {
	t := &Table{path: path, logger: logger}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-reads the backing CSV and atomically replaces the row map
func (t *Table) Reload() error {
	f, err := os.Open(t.path)
	if err != nil {
		return fmt.Errorf("open phase table: %w", err)
	}
	defer f.Close()

	rows, err := t.parse(f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("phase table %s: no usable rows", t.path)
	}

	t.mu.Lock()
	t.rows = rows
	t.gen++
	t.mu.Unlock()
	t.logger.Infow("phase table loaded", "path", t.path, "rows", len(rows))
	return nil
}

func (t *Table) parse(r io.Reader) (map[string]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // scraper output carries extra columns

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read phase table header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"date", "phase", "illumination_pct", "moon_age_days"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("phase table missing column %q", required)
		}
	}

	rows := make(map[string]Record)
	line := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			t.logger.Warnw("phase table row unreadable", "line", line, "error", err)
			continue
		}
		rec, err := parseRow(fields, col)
		if err != nil {
			t.logger.Warnw("phase table row skipped", "line", line, "error", err)
			continue
		}
		key := dayKey(rec.Date)
		if _, dup := rows[key]; dup {
			t.logger.Warnw("phase table duplicate date ignored", "line", line, "date", key)
			continue
		}
		rows[key] = rec
	}
	return rows, nil
}

func parseRow(fields []string, col map[string]int) (Record, error) {
	get := func(name string) string {
		i := col[name]
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	var date time.Time
	var err error
	raw := get("date")
	for _, layout := range dateFormats {
		if date, err = time.Parse(layout, raw); err == nil {
			break
		}
	}
	if err != nil {
		return Record{}, fmt.Errorf("unparseable date %q", raw)
	}

	name, ok := ParseName(get("phase"))
	if !ok {
		return Record{}, fmt.Errorf("unknown phase %q", get("phase"))
	}
	illum, err := strconv.ParseFloat(get("illumination_pct"), 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad illumination %q", get("illumination_pct"))
	}
	age, err := strconv.ParseFloat(get("moon_age_days"), 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad moon age %q", get("moon_age_days"))
	}

	rec := Record{
		Date:            date,
		Phase:           name,
		IlluminationPct: illum,
		AgeDays:         age,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Generation increments on every successful Reload. Anything caching a
// derivation of a row compares it to detect a swap.
func (t *Table) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gen
}

// Lookup returns the row for the exact calendar date, if present
func (t *Table) Lookup(date time.Time) (Record, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[dayKey(date)]
	return rec, ok
}

// Len returns the number of loaded rows
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Path returns the backing file path
func (t *Table) Path() string {
	return t.path
}
