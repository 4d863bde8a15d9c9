package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ApplicationStatus represents where a tracked application stands.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// Application is a single tracked job application.
type Application struct {
	ID         int64             `json:"id"`
	Company    string            `json:"company"`
	Role       string            `json:"role"`
	URL        string            `json:"url,omitempty"`
	Status     ApplicationStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	MatchScore float64           `json:"match_score,omitempty"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// ApplicationAddInput is the input for AddApplication.
type ApplicationAddInput struct {
	Company    string  `json:"company"`
	Role       string  `json:"role"`
	URL        string  `json:"url,omitempty"`
	Status     string  `json:"status,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	MatchScore float64 `json:"match_score,omitempty"`
}

// ApplicationListInput is the input for ListApplications.
type ApplicationListInput struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// ApplicationUpdateInput is the input for UpdateApplication.
type ApplicationUpdateInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ApplicationResult is the output for add/update operations.
type ApplicationResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ApplicationListResult is the output for list operations.
type ApplicationListResult struct {
	Applications []Application `json:"applications"`
	Total        int           `json:"total"`
}

// Stats summarizes the tracked applications.
type Stats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ResponseRate float64        `json:"response_rate"`
}

var (
	applicationsDB   *sql.DB
	applicationsOnce sync.Once
	applicationsErr  error
)

// openApplicationsDB opens (or creates) the SQLite applications database.
func openApplicationsDB() (*sql.DB, error) {
	applicationsOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".go_autofill")
		if err := os.MkdirAll(dir, 0750); err != nil {
			applicationsErr = fmt.Errorf("applications: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "applications.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			applicationsErr = fmt.Errorf("applications: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initApplicationsSchema(db); err != nil {
			applicationsErr = fmt.Errorf("applications: init schema: %w", err)
			return
		}
		applicationsDB = db
	})
	return applicationsDB, applicationsErr
}

func initApplicationsSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS applications (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		company     TEXT NOT NULL,
		role        TEXT NOT NULL,
		url         TEXT,
		status      TEXT NOT NULL DEFAULT 'applied',
		notes       TEXT,
		match_score REAL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`)
	return err
}

func validStatus(s string) bool {
	switch ApplicationStatus(s) {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// AddApplication saves a new application.
func AddApplication(_ context.Context, input ApplicationAddInput) (*ApplicationResult, error) {
	if input.Company == "" || input.Role == "" {
		return nil, errors.New("applications: company and role are required")
	}

	status := strings.ToLower(input.Status)
	if status == "" {
		status = string(StatusApplied)
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("applications: invalid status %q (valid: applied, interview, offer, rejected, withdrawn)", status)
	}

	db, err := openApplicationsDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO applications (company, role, url, status, notes, match_score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Company, input.Role, input.URL, status,
		input.Notes, input.MatchScore, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("applications: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &ApplicationResult{
		ID:      id,
		Message: fmt.Sprintf("Application to '%s' for '%s' saved with status '%s' (id=%d)", input.Company, input.Role, status, id),
	}, nil
}

// ListApplications returns tracked applications, optionally filtered by status.
func ListApplications(_ context.Context, input ApplicationListInput) (*ApplicationListResult, error) {
	db, err := openApplicationsDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("applications: invalid status %q", status)
		}
		rows, err = db.Query(
			`SELECT id, company, role, url, status, notes, match_score, created_at, updated_at
			 FROM applications WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, company, role, url, status, notes, match_score, created_at, updated_at
			 FROM applications ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("applications: query: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		var url, notes sql.NullString
		var matchScore sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.Company, &a.Role, &url, &a.Status,
			&notes, &matchScore, &a.CreatedAt, &a.UpdatedAt); err != nil {
			continue
		}
		a.URL = url.String
		a.Notes = notes.String
		a.MatchScore = matchScore.Float64
		apps = append(apps, a)
	}

	var total int
	if input.Status != "" {
		db.QueryRow(`SELECT COUNT(*) FROM applications WHERE status = ?`, strings.ToLower(input.Status)).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&total) //nolint:errcheck
	}

	if apps == nil {
		apps = []Application{}
	}
	return &ApplicationListResult{Applications: apps, Total: total}, nil
}

// UpdateApplication updates the status and/or notes of an application.
func UpdateApplication(_ context.Context, input ApplicationUpdateInput) (*ApplicationResult, error) {
	if input.ID <= 0 {
		return nil, errors.New("applications: id is required")
	}
	if input.Status == "" && input.Notes == "" {
		return nil, errors.New("applications: at least one of status or notes must be provided")
	}

	db, err := openApplicationsDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	switch {
	case input.Status != "" && input.Notes != "":
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("applications: invalid status %q", status)
		}
		_, err = db.Exec(`UPDATE applications SET status=?, notes=?, updated_at=? WHERE id=?`,
			status, input.Notes, now, input.ID)
	case input.Status != "":
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("applications: invalid status %q", status)
		}
		_, err = db.Exec(`UPDATE applications SET status=?, updated_at=? WHERE id=?`,
			status, now, input.ID)
	default:
		_, err = db.Exec(`UPDATE applications SET notes=?, updated_at=? WHERE id=?`,
			input.Notes, now, input.ID)
	}

	if err != nil {
		return nil, fmt.Errorf("applications: update: %w", err)
	}

	return &ApplicationResult{
		ID:      input.ID,
		Message: fmt.Sprintf("Application #%d updated successfully", input.ID),
	}, nil
}

// ApplicationStats summarizes all tracked applications. Response rate is the
// share of applications that moved past the initial applied status.
func ApplicationStats(_ context.Context) (*Stats, error) {
	db, err := openApplicationsDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("applications: stats: %w", err)
	}
	defer rows.Close()

	stats := &Stats{ByStatus: make(map[string]int)}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			continue
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}

	if stats.Total > 0 {
		responded := stats.Total - stats.ByStatus[string(StatusApplied)]
		stats.ResponseRate = float64(responded) / float64(stats.Total)
	}
	return stats, nil
}
