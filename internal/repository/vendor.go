package repository

import (
	"context"
	"fmt"

	"blogger/internal/models"
)

type VendorRepo interface {
	List(ctx context.Context) ([]models.Vendor, error)
	GetByID(ctx context.Context, id int64) (*models.Vendor, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	Create(ctx context.Context, v *models.Vendor) (*models.Vendor, error)
	Update(ctx context.Context, v *models.Vendor) (*models.Vendor, error)
	Delete(ctx context.Context, id int64) error
}

type vendorRepo struct{ db DB }

func NewVendorRepo(db DB) VendorRepo { return &vendorRepo{db: db} }

const vendorColumns = `id, name, email, phone, status, created_at, updated_at`

func scanVendor(row interface{ Scan(...any) error }) (*models.Vendor, error) {
	var v models.Vendor
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendorRepo) List(ctx context.Context) ([]models.Vendor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vendorColumns+` FROM vendors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	out := []models.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (r *vendorRepo) GetByID(ctx context.Context, id int64) (*models.Vendor, error) {
	v, err := scanVendor(r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return v, nil
}

func (r *vendorRepo) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM vendors WHERE email = $1 AND id <> $2)`, email, exceptID,
	).Scan(&exists)
	return exists, err
}

func (r *vendorRepo) Create(ctx context.Context, v *models.Vendor) (*models.Vendor, error) {
	out, err := scanVendor(r.db.QueryRow(ctx,
		`INSERT INTO vendors (name, email, phone, status) VALUES ($1, $2, $3, $4)
		 RETURNING `+vendorColumns,
		v.Name, v.Email, v.Phone, v.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return out, nil
}

func (r *vendorRepo) Update(ctx context.Context, v *models.Vendor) (*models.Vendor, error) {
	out, err := scanVendor(r.db.QueryRow(ctx,
		`UPDATE vendors SET name = $1, email = $2, phone = $3, status = $4, updated_at = now()
		 WHERE id = $5 RETURNING `+vendorColumns,
		v.Name, v.Email, v.Phone, v.Status, v.ID,
	))
	if err != nil {
		return nil, noRows(err)
	}
	return out, nil
}

// Delete removes the vendor; its ads are removed by ON DELETE CASCADE.
func (r *vendorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
