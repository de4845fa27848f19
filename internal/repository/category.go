package repository

import (
	"context"
	"fmt"

	"blogger/internal/models"
)

type CategoryRepo interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	NameTaken(ctx context.Context, name string, exceptID int64) (bool, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id int64, name string) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepo struct{ db DB }

func NewCategoryRepo(db DB) CategoryRepo { return &categoryRepo{db: db} }

const categoryColumns = `id, name, created_at`

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return c, nil
}

// NameTaken reports whether a category other than exceptID already uses name.
// Pass exceptID = 0 to check against every row.
func (r *categoryRepo) NameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND id <> $2)`, name, exceptID,
	).Scan(&exists)
	return exists, err
}

func (r *categoryRepo) Create(ctx context.Context, name string) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING `+categoryColumns, name))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (r *categoryRepo) Update(ctx context.Context, id int64, name string) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2 RETURNING `+categoryColumns, name, id))
	if err != nil {
		return nil, noRows(err)
	}
	return c, nil
}

// Delete removes the category; its blog_categories rows go with it (FK cascade).
func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetOrCreateCategory returns the id of the category called name, creating
// it first if absent. Safe under concurrent callers: the insert is a no-op on
// conflict and the lookup then sees the winner's row.
func GetOrCreateCategory(ctx context.Context, q Querier, name string) (int64, error) {
	if _, err := q.Exec(ctx,
		`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
		return 0, fmt.Errorf("ensure category %q: %w", name, err)
	}

	var id int64
	if err := q.QueryRow(ctx, `SELECT id FROM categories WHERE name = $1`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("lookup category %q: %w", name, err)
	}
	return id, nil
}
