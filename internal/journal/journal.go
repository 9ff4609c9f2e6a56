// Package journal persists confirmed price entries in an append-only CSV
// file. Records are written once and never rewritten or rotated.
package journal

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"
)

// timestampLayout is an ISO-ish local timestamp, microsecond precision.
const timestampLayout = "2006-01-02 15:04:05.000000"

// Record is one confirmed price entry.
type Record struct {
	Timestamp time.Time
	BuyPrice  int64
	SellPrice int64
	UserID    int64
}

// Journal is the append-only sink for confirmed price entries.
type Journal interface {
	Append(ctx context.Context, record Record) error
}

// CSVJournal appends records to a flat CSV file, creating it on first write.
type CSVJournal struct {
	path string
	mu   sync.Mutex
	log  *slog.Logger
}

// NewCSVJournal creates a journal writing to the given path.
func NewCSVJournal(path string, log *slog.Logger) *CSVJournal {
	if log == nil {
		log = slog.Default()
	}

	return &CSVJournal{
		path: path,
		log:  log,
	}
}

// Append writes one record as a CSV row. The mutex keeps rows intact under
// the single-writer sequential appends this bot produces.
func (j *CSVJournal) Append(ctx context.Context, record Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal %s: %w", j.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			j.log.Error("failed to close journal", slog.String("path", j.path), slog.Any("error", cerr))
		}
	}()

	w := csv.NewWriter(f)
	row := []string{
		record.Timestamp.Format(timestampLayout),
		strconv.FormatInt(record.BuyPrice, 10),
		strconv.FormatInt(record.SellPrice, 10),
		strconv.FormatInt(record.UserID, 10),
	}

	if err := w.Write(row); err != nil {
		return fmt.Errorf("write journal row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush journal: %w", err)
	}

	return nil
}

// HealthCheck verifies the journal file can be opened for appending.
func (j *CSVJournal) HealthCheck(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("journal not writable: %w", err)
	}

	return f.Close()
}
