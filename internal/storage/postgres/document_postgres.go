package postgres

import (
	"ProjectTracker/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentRow = 1

type DocumentPostgres struct {
	db *pgxpool.Pool
}

func NewDocumentPostgres(db *pgxpool.Pool) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

// Migrate creates the single-row document table.
func (r *DocumentPostgres) Migrate(ctx context.Context) error {
	query := `
    CREATE TABLE IF NOT EXISTS tracker_document (
        id         SMALLINT PRIMARY KEY,
        payload    JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )
    `
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create tracker_document: %w", err)
	}
	return nil
}

func (r *DocumentPostgres) Load(ctx context.Context) (*models.Document, error) {
	var payload []byte
	query := `SELECT payload FROM tracker_document WHERE id = $1`
	err := r.db.QueryRow(ctx, query, documentRow).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		doc := models.NewDocument()
		if err := r.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

func (r *DocumentPostgres) Save(ctx context.Context, doc *models.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	query := `
    INSERT INTO tracker_document (id, payload, updated_at)
    VALUES ($1, $2, now())
    ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
    `
	if _, err := r.db.Exec(ctx, query, documentRow, payload); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
