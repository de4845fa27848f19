package repository

import (
	"context"
	"fmt"

	"blogger/internal/logger"
	"blogger/internal/models"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlogRepo interface {
	Create(ctx context.Context, in *models.BlogInput) (int64, error)
	Update(ctx context.Context, id int64, in *models.BlogInput) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
}

type blogRepo struct{ db DB }

func NewBlogRepo(db DB) BlogRepo { return &blogRepo{db: db} }

// Categories are aggregated in the order they were attached.
const blogSelect = `
	SELECT b.id, b.title, b.author, b.content, b.short_description, b.vendor_id,
	       b.created_at, b.updated_at,
	       COALESCE(string_agg(c.name, ',' ORDER BY bc.position), '') AS categories
	FROM blogs b
	LEFT JOIN blog_categories bc ON bc.blog_id = b.id
	LEFT JOIN categories c ON c.id = bc.category_id
`

func scanBlog(row interface{ Scan(...any) error }) (*models.Blog, error) {
	var b models.Blog
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Content, &b.ShortDescription, &b.VendorID,
		&b.CreatedAt, &b.UpdatedAt, &b.Categories,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepo) List(ctx context.Context) ([]models.Blog, error) {
	rows, err := r.db.Query(ctx, blogSelect+` GROUP BY b.id ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	out := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *blogRepo) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	b, err := scanBlog(r.db.QueryRow(ctx, blogSelect+` WHERE b.id = $1 GROUP BY b.id`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return b, nil
}

// Create inserts the blog and links its categories in one transaction.
func (r *blogRepo) Create(ctx context.Context, in *models.BlogInput) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO blogs (title, author, content, short_description, vendor_id)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			in.Title, in.Author, in.Content, in.ShortDescription, in.VendorID,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert blog: %w", err)
		}
		logger.WithCtx(ctx).Debug("blog row inserted", zap.Int64("blog_id", id))

		return linkCategories(ctx, tx, id, in.Categories)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites the blog row and replaces its category set in one transaction.
func (r *blogRepo) Update(ctx context.Context, id int64, in *models.BlogInput) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE blogs
			 SET title = $1, author = $2, content = $3, short_description = $4,
			     vendor_id = $5, updated_at = now()
			 WHERE id = $6`,
			in.Title, in.Author, in.Content, in.ShortDescription, in.VendorID, id,
		)
		if err != nil {
			return fmt.Errorf("update blog: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM blog_categories WHERE blog_id = $1`, id); err != nil {
			return fmt.Errorf("clear blog categories: %w", err)
		}

		return linkCategories(ctx, tx, id, in.Categories)
	})
}

// Delete removes the join rows first; blog_categories.blog_id does not cascade.
func (r *blogRepo) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM blog_categories WHERE blog_id = $1`, id); err != nil {
			return fmt.Errorf("delete blog categories: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete blog: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func linkCategories(ctx context.Context, tx pgx.Tx, blogID int64, names []string) error {
	for pos, name := range names {
		catID, err := GetOrCreateCategory(ctx, tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO blog_categories (blog_id, category_id, position) VALUES ($1, $2, $3)`,
			blogID, catID, pos,
		); err != nil {
			return fmt.Errorf("link category %q: %w", name, err)
		}
	}
	return nil
}
