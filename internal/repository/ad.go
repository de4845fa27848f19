package repository

import (
	"context"
	"fmt"

	"blogger/internal/logger"
	"blogger/internal/models"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdRepo interface {
	List(ctx context.Context) ([]models.Ad, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]models.Ad, error)
	ReplaceForVendor(ctx context.Context, vendorID int64, entries []models.AdEntry) error
	Delete(ctx context.Context, id int64) error
}

type adRepo struct{ db DB }

func NewAdRepo(db DB) AdRepo { return &adRepo{db: db} }

func (r *adRepo) List(ctx context.Context) ([]models.Ad, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, vendor_id, location_id, ad_code, created_at, updated_at
		 FROM ads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	defer rows.Close()

	out := []models.Ad{}
	for rows.Next() {
		var a models.Ad
		if err := rows.Scan(&a.ID, &a.VendorID, &a.LocationID, &a.AdCode, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *adRepo) ListByVendor(ctx context.Context, vendorID int64) ([]models.Ad, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.vendor_id, a.location_id, a.ad_code, a.created_at, a.updated_at, v.name
		 FROM ads a
		 JOIN vendors v ON v.id = a.vendor_id
		 WHERE a.vendor_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list vendor ads: %w", err)
	}
	defer rows.Close()

	out := []models.Ad{}
	for rows.Next() {
		var a models.Ad
		if err := rows.Scan(&a.ID, &a.VendorID, &a.LocationID, &a.AdCode, &a.CreatedAt, &a.UpdatedAt, &a.VendorName); err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ReplaceForVendor swaps the vendor's whole ad set for entries in one
// transaction. The vendor row is locked first, so two concurrent saves for
// the same vendor run one after the other instead of interleaving their
// delete and insert steps. An empty entries slice clears the set.
func (r *adRepo) ReplaceForVendor(ctx context.Context, vendorID int64, entries []models.AdEntry) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM vendors WHERE id = $1 FOR UPDATE`, vendorID).Scan(&locked)
		if err != nil {
			return noRows(err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM ads WHERE vendor_id = $1`, vendorID)
		if err != nil {
			return fmt.Errorf("delete vendor ads: %w", err)
		}
		logger.WithCtx(ctx).Debug("vendor ads cleared",
			zap.Int64("vendor_id", vendorID), zap.Int64("removed", tag.RowsAffected()))

		for _, e := range entries {
			if _, err := tx.Exec(ctx,
				`INSERT INTO ads (vendor_id, location_id, ad_code) VALUES ($1, $2, $3)`,
				vendorID, e.LocationID, e.AdCode,
			); err != nil {
				return fmt.Errorf("insert ad %q: %w", e.LocationID, err)
			}
		}
		return nil
	})
}

func (r *adRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
