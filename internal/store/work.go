// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides persistence for recent works. The work history
// is a small bounded list: saving beyond the cap evicts the oldest
// entries, so the table never grows past MaxWorks rows.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brandstudio/internal/models"
)

// MaxWorks caps the recent-work history.
const MaxWorks = 10

// WorkStore handles all work-related database operations.
type WorkStore struct {
	db *sql.DB
}

// NewWorkStore creates a new WorkStore with the given database connection.
func NewWorkStore(db *sql.DB) *WorkStore {
	return &WorkStore{db: db}
}

// List returns all saved works, newest first.
func (s *WorkStore) List() ([]models.Work, error) {
	rows, err := s.db.Query(`
		SELECT id, name, category, template_id, thumbnail_data_url, data, last_modified
		FROM works
		ORDER BY last_modified DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	defer rows.Close()

	var works []models.Work
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

// FindByID retrieves a work by its UUID. Returns nil if not found.
func (s *WorkStore) FindByID(id uuid.UUID) (*models.Work, error) {
	row := s.db.QueryRow(`
		SELECT id, name, category, template_id, thumbnail_data_url, data, last_modified
		FROM works WHERE id = $1
	`, id)
	w, err := scanWork(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find work by id: %w", err)
	}
	return &w, nil
}

// Save upserts a work and evicts the oldest entries beyond MaxWorks.
// Both steps run in one transaction so a concurrent save never leaves
// the history over cap.
func (s *WorkStore) Save(w *models.Work) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.LastModified.IsZero() {
		w.LastModified = time.Now()
	}
	data, err := json.Marshal(w.Data)
	if err != nil {
		return fmt.Errorf("marshal work data: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO works (id, name, category, template_id, thumbnail_data_url, data, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			template_id = EXCLUDED.template_id,
			thumbnail_data_url = EXCLUDED.thumbnail_data_url,
			data = EXCLUDED.data,
			last_modified = EXCLUDED.last_modified
	`, w.ID, w.Name, w.Category, w.TemplateID, w.ThumbnailDataURL, data, w.LastModified)
	if err != nil {
		return fmt.Errorf("save work: %w", err)
	}

	// Evict oldest beyond the cap.
	_, err = tx.Exec(`
		DELETE FROM works WHERE id IN (
			SELECT id FROM works
			ORDER BY last_modified DESC
			OFFSET $1
		)
	`, MaxWorks)
	if err != nil {
		return fmt.Errorf("evict old works: %w", err)
	}

	return tx.Commit()
}

// Delete removes a work by ID. Deleting an unknown id is not an error.
func (s *WorkStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM works WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete work: %w", err)
	}
	return nil
}

// Count returns the number of saved works.
func (s *WorkStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM works`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count works: %w", err)
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWork(row scanner) (models.Work, error) {
	var w models.Work
	var data []byte
	err := row.Scan(&w.ID, &w.Name, &w.Category, &w.TemplateID, &w.ThumbnailDataURL, &data, &w.LastModified)
	if err != nil {
		return w, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &w.Data); err != nil {
			return w, fmt.Errorf("unmarshal work data: %w", err)
		}
	}
	return w, nil
}
