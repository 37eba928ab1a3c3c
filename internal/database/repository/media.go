package repository

import (
	"context"
	"database/sql"
	"strings"
)

// MediaQuery selects a media record by metadata. VariantID and Priority are
// optional; nil means "don't filter on this field".
type MediaQuery struct {
	ProductID string
	VariantID *string
	Priority  *int
}

// MediaRepo handles product media records.
type MediaRepo struct {
	db *sql.DB
}

func NewMediaRepo(db *sql.DB) *MediaRepo { return &MediaRepo{db: db} }

func (r *MediaRepo) Insert(ctx context.Context, m MediaRecord) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO media(id, product_id, variant_id, priority, url)
	VALUES(?, ?, ?, ?, ?);
	`, m.ID, m.ProductID, m.VariantID, m.Priority, m.URL)
	return err
}

// FindOne returns the first matching record, or nil when nothing matches.
func (r *MediaRepo) FindOne(ctx context.Context, q MediaQuery) (*MediaRecord, error) {
	where := []string{"product_id = ?"}
	args := []interface{}{q.ProductID}

	if q.VariantID != nil {
		where = append(where, "variant_id = ?")
		args = append(args, *q.VariantID)
	}
	if q.Priority != nil {
		where = append(where, "priority = ?")
		args = append(args, *q.Priority)
	}

	query := "SELECT id, product_id, variant_id, priority, url FROM media WHERE " +
		strings.Join(where, " AND ") + " ORDER BY priority, id LIMIT 1"

	var m MediaRecord
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.ProductID, &m.VariantID, &m.Priority, &m.URL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
