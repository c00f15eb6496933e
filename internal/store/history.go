// Package store persists completed FIRE calculations in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when no calculation has the requested id.
var ErrNotFound = errors.New("calculation not found")

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// History wraps the SQLite database holding past calculations.
type History struct {
	db *sql.DB
}

// Record is one stored calculation. Result holds the full JSON document
// exactly as it was returned to the caller; List leaves it empty.
type Record struct {
	ID                   string          `json:"id"`
	CreatedAt            time.Time       `json:"created_at"`
	Request              domain.Request  `json:"request"`
	FireNumber           fdec.Money      `json:"fire_number"`
	YearsToFire          int             `json:"years_to_fire"`
	TargetAge            int             `json:"target_age"`
	MonthlySavingsNeeded fdec.Money      `json:"monthly_savings_needed"`
	HorizonCapped        bool            `json:"horizon_capped"`
	Result               json.RawMessage `json:"result,omitempty"`
}

// Open opens or creates the history database at dbPath.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the database.
func (h *History) Close() error {
	return h.db.Close()
}

// Save stores req and its result under id. An empty id gets a generated UUID.
func (h *History) Save(ctx context.Context, id string, req domain.Request, result *domain.FireResult) (Record, error) {
	if result == nil {
		return Record{}, errors.New("nil result")
	}
	if id == "" {
		id = newID()
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return Record{}, fmt.Errorf("encoding request: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return Record{}, fmt.Errorf("encoding result: %w", err)
	}

	rec := Record{
		ID:                   id,
		CreatedAt:            nowFunc().UTC(),
		Request:              req,
		FireNumber:           result.FireNumber,
		YearsToFire:          result.YearsToFire,
		TargetAge:            result.TargetAge,
		MonthlySavingsNeeded: result.MonthlySavingsNeeded,
		HorizonCapped:        result.HorizonCapped,
		Result:               resultJSON,
	}

	_, err = h.db.ExecContext(ctx, `INSERT INTO calculations (
		id, created_at, current_age, investment_profile, fire_number, years_to_fire,
		target_age, monthly_savings, horizon_capped, request_json, result_json
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(timeLayout), req.CurrentAge, string(req.InvestmentProfile),
		rec.FireNumber.String(), rec.YearsToFire, rec.TargetAge, rec.MonthlySavingsNeeded.String(),
		boolToInt(rec.HorizonCapped), string(reqJSON), string(resultJSON),
	)
	if err != nil {
		return Record{}, fmt.Errorf("inserting calculation %s: %w", id, err)
	}
	return rec, nil
}

// Get loads one calculation including its result document.
func (h *History) Get(ctx context.Context, id string) (Record, error) {
	row := h.db.QueryRowContext(ctx, `SELECT
		id, created_at, fire_number, years_to_fire, target_age, monthly_savings,
		horizon_capped, request_json, result_json
		FROM calculations WHERE id = ?`, id)

	var rec Record
	var resultJSON string
	if err := scanRecord(row, &rec, &resultJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Record{}, err
	}
	rec.Result = json.RawMessage(resultJSON)
	return rec, nil
}

// List returns the most recent calculations, newest first, without result documents.
func (h *History) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := h.db.QueryContext(ctx, `SELECT
		id, created_at, fire_number, years_to_fire, target_age, monthly_savings,
		horizon_capped, request_json, ''
		FROM calculations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var ignored string
		if err := scanRecord(rows, &rec, &ignored); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes one calculation. Deleting an unknown id returns ErrNotFound.
func (h *History) Delete(ctx context.Context, id string) error {
	res, err := h.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner, rec *Record, resultJSON *string) error {
	var createdStr, fireNumber, savings, reqJSON string
	var capped int

	err := s.Scan(
		&rec.ID, &createdStr, &fireNumber, &rec.YearsToFire, &rec.TargetAge, &savings,
		&capped, &reqJSON, resultJSON,
	)
	if err != nil {
		return err
	}

	rec.HorizonCapped = capped != 0
	if rec.CreatedAt, err = time.Parse(timeLayout, createdStr); err != nil {
		return fmt.Errorf("parsing created_at for %s: %w", rec.ID, err)
	}
	if rec.FireNumber, err = fdec.NewMoneyFromString(fireNumber); err != nil {
		return fmt.Errorf("parsing fire_number for %s: %w", rec.ID, err)
	}
	if rec.MonthlySavingsNeeded, err = fdec.NewMoneyFromString(savings); err != nil {
		return fmt.Errorf("parsing monthly_savings for %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(reqJSON), &rec.Request); err != nil {
		return fmt.Errorf("decoding request for %s: %w", rec.ID, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DecodeResult parses the stored result document. Records returned by List carry no result.
func (r Record) DecodeResult() (*domain.FireResult, error) {
	if len(r.Result) == 0 {
		return nil, fmt.Errorf("record %s has no result document", r.ID)
	}
	var result domain.FireResult
	if err := json.Unmarshal(r.Result, &result); err != nil {
		return nil, fmt.Errorf("decoding result for %s: %w", r.ID, err)
	}
	return &result, nil
}
