package sqlite

import (
	"ProjectTracker/internal/models"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const documentRow = 1

// Storage persists the document as a single JSON payload row in SQLite.
type Storage struct {
	db   *sql.DB
	path string
}

func NewStorage(path string) (*Storage, error) {
	if path == "" {
		path = "tracker.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS document (
		id INTEGER PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create document table: %w", err)
	}
	return &Storage{db: db, path: path}, nil
}

func (s *Storage) Load(ctx context.Context) (*models.Document, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM document WHERE id = ?`, documentRow).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		doc := models.NewDocument()
		if err := s.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

func (s *Storage) Save(ctx context.Context, doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO document(id, payload) VALUES(?, ?) ON CONFLICT(id) DO UPDATE SET payload=excluded.payload`,
		documentRow, data,
	); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Path returns the configured database path.
func (s *Storage) Path() string { return s.path }
