package services

import (
	"context"
	"errors"
	"slices"

	"blogger/internal/apperr"
	"blogger/internal/logger"
	"blogger/internal/models"
	"blogger/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type BlogService interface {
	Create(ctx context.Context, req models.BlogRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.BlogRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Blog, error)
	Get(ctx context.Context, id int64) (*models.Blog, error)
}

type blogService struct {
	repo   repository.BlogRepo
	policy *bluemonday.Policy // nil: store content as sent
}

// NewBlogService builds the content write/read path. With sanitize set,
// blog HTML goes through bluemonday's UGC policy before it is stored.
func NewBlogService(repo repository.BlogRepo, sanitize bool) BlogService {
	s := &blogService{repo: repo}
	if sanitize {
		p := bluemonday.UGCPolicy()
		p.AllowElements("img")
		p.AllowAttrs("src", "alt").OnElements("img")
		s.policy = p
	}
	return s
}

func (s *blogService) Create(ctx context.Context, req models.BlogRequest) (int64, error) {
	log := logger.WithCtx(ctx)
	log.Info("create blog",
		zap.String("title", req.Title),
		zap.Int64("vendor_id", req.VendorID.Int64()),
		zap.Int("categories_count", len(req.Categories)),
	)

	in, err := s.validate(req)
	if err != nil {
		log.Warn("create blog: validation failed", zap.Error(err))
		return 0, err
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		log.Error("create blog: rolled back", zap.Error(err))
		return 0, apperr.FromDB(err, "Failed to create blog")
	}

	log.Info("blog created", zap.Int64("id", id), zap.Strings("categories", in.Categories))
	return id, nil
}

func (s *blogService) Update(ctx context.Context, id int64, req models.BlogRequest) error {
	log := logger.WithCtx(ctx)
	log.Info("update blog", zap.Int64("id", id), zap.String("title", req.Title))

	in, err := s.validate(req)
	if err != nil {
		log.Warn("update blog: validation failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("update blog: not found", zap.Int64("id", id))
			return apperr.NotFound("Blog not found")
		}
		log.Error("update blog: rolled back", zap.Int64("id", id), zap.Error(err))
		return apperr.FromDB(err, "Failed to update blog")
	}

	log.Info("blog updated", zap.Int64("id", id), zap.Strings("categories", in.Categories))
	return nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("delete blog", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("delete blog: not found", zap.Int64("id", id))
			return apperr.NotFound("Blog not found")
		}
		log.Error("delete blog: rolled back", zap.Int64("id", id), zap.Error(err))
		return apperr.FromDB(err, "Failed to delete blog")
	}

	log.Info("blog deleted", zap.Int64("id", id))
	return nil
}

func (s *blogService) List(ctx context.Context) ([]models.Blog, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("list blogs", zap.Error(err))
		return nil, apperr.FromDB(err, "Internal server error")
	}
	logger.WithCtx(ctx).Debug("blogs listed", zap.Int("count", len(list)))
	return list, nil
}

func (s *blogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Blog post not found")
		}
		logger.WithCtx(ctx).Error("get blog", zap.Int64("id", id), zap.Error(err))
		return nil, apperr.FromDB(err, "Internal server error")
	}
	return b, nil
}

// validate checks every field at once and turns the request into repository
// input. Categories are de-duplicated here, so a blog never links the same
// category twice.
func (s *blogService) validate(req models.BlogRequest) (*models.BlogInput, error) {
	fields, err := checkStruct(req)
	if err != nil {
		return nil, apperr.Internal("Validation failed", err)
	}

	categories := normalizeCategories(req.Categories)
	if len(categories) == 0 && !slices.Contains(fields, "categories") {
		fields = append(fields, "categories")
	}

	switch {
	case len(fields) == 1 && fields[0] == "vendor_id":
		return nil, apperr.Validation("Invalid vendor_id", "vendor_id must be a positive number", "vendor_id")
	case len(fields) > 0:
		return nil, missingFieldsError(fields)
	}

	content := req.Content
	if s.policy != nil {
		content = s.policy.Sanitize(content)
	}

	return &models.BlogInput{
		Title:            req.Title,
		Author:           req.Author,
		Content:          content,
		ShortDescription: req.ShortDescription,
		VendorID:         req.VendorID.Int64(),
		Categories:       categories,
	}, nil
}
