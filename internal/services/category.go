package services

import (
	"context"
	"errors"
	"strings"

	"blogger/internal/apperr"
	"blogger/internal/logger"
	"blogger/internal/models"
	"blogger/internal/repository"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id int64, req models.CategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo repository.CategoryRepo
}

func NewCategoryService(repo repository.CategoryRepo) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("list categories", zap.Error(err))
		return nil, apperr.FromDB(err, "Internal server error")
	}
	return list, nil
}

func (s *categoryService) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("Category name is required", "", "name")
	}

	taken, err := s.repo.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, apperr.FromDB(err, "Internal server error")
	}
	if taken {
		return nil, apperr.Duplicate("Category already exists", "")
	}

	c, err := s.repo.Create(ctx, name)
	if err != nil {
		logger.WithCtx(ctx).Error("create category", zap.String("name", name), zap.Error(err))
		return nil, categoryWriteError(err, "Category already exists")
	}

	logger.WithCtx(ctx).Info("category created", zap.Int64("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req models.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("Category name is required", "", "name")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, apperr.FromDB(err, "Internal server error")
	}

	taken, err := s.repo.NameTaken(ctx, name, id)
	if err != nil {
		return nil, apperr.FromDB(err, "Internal server error")
	}
	if taken {
		return nil, apperr.Duplicate("Category name already exists", "")
	}

	c, err := s.repo.Update(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		logger.WithCtx(ctx).Error("update category", zap.Int64("id", id), zap.Error(err))
		return nil, categoryWriteError(err, "Category name already exists")
	}

	logger.WithCtx(ctx).Info("category updated", zap.Int64("id", id), zap.String("name", c.Name))
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Category not found")
		}
		logger.WithCtx(ctx).Error("delete category", zap.Int64("id", id), zap.Error(err))
		return apperr.FromDB(err, "Internal server error")
	}
	logger.WithCtx(ctx).Info("category deleted", zap.Int64("id", id))
	return nil
}

// categoryWriteError covers the race where another request takes the name
// between the NameTaken check and the write.
func categoryWriteError(err error, dupMessage string) error {
	mapped := apperr.FromDB(err, "Internal server error")
	if apperr.IsKind(mapped, apperr.KindDuplicate) {
		return apperr.Duplicate(dupMessage, "")
	}
	return mapped
}
