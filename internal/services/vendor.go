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

type VendorService interface {
	List(ctx context.Context) ([]models.Vendor, error)
	Get(ctx context.Context, id int64) (*models.Vendor, error)
	Create(ctx context.Context, req models.VendorRequest) (*models.Vendor, error)
	Update(ctx context.Context, id int64, req models.VendorRequest) (*models.Vendor, error)
	Delete(ctx context.Context, id int64) error
}

type vendorService struct {
	repo repository.VendorRepo
}

func NewVendorService(repo repository.VendorRepo) VendorService {
	return &vendorService{repo: repo}
}

func (s *vendorService) List(ctx context.Context) ([]models.Vendor, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("list vendors", zap.Error(err))
		return nil, apperr.FromDB(err, "Failed to fetch vendors")
	}
	return list, nil
}

func (s *vendorService) Get(ctx context.Context, id int64) (*models.Vendor, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Vendor not found")
		}
		logger.WithCtx(ctx).Error("get vendor", zap.Int64("id", id), zap.Error(err))
		return nil, apperr.FromDB(err, "Failed to fetch vendor")
	}
	return v, nil
}

func (s *vendorService) Create(ctx context.Context, req models.VendorRequest) (*models.Vendor, error) {
	v, err := vendorFromRequest(req)
	if err != nil {
		return nil, err
	}

	if v.Email != nil {
		if err := s.checkEmail(ctx, *v.Email, 0); err != nil {
			return nil, err
		}
	}

	out, err := s.repo.Create(ctx, v)
	if err != nil {
		logger.WithCtx(ctx).Error("create vendor", zap.String("name", v.Name), zap.Error(err))
		return nil, vendorWriteError(err, "Failed to create vendor")
	}

	logger.WithCtx(ctx).Info("vendor created", zap.Int64("id", out.ID), zap.String("name", out.Name))
	return out, nil
}

func (s *vendorService) Update(ctx context.Context, id int64, req models.VendorRequest) (*models.Vendor, error) {
	v, err := vendorFromRequest(req)
	if err != nil {
		return nil, err
	}
	v.ID = id

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if v.Email != nil {
		if err := s.checkEmail(ctx, *v.Email, id); err != nil {
			return nil, err
		}
	}

	out, err := s.repo.Update(ctx, v)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Vendor not found")
		}
		logger.WithCtx(ctx).Error("update vendor", zap.Int64("id", id), zap.Error(err))
		return nil, vendorWriteError(err, "Failed to update vendor")
	}

	logger.WithCtx(ctx).Info("vendor updated", zap.Int64("id", id))
	return out, nil
}

func (s *vendorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Vendor not found")
		}
		logger.WithCtx(ctx).Error("delete vendor", zap.Int64("id", id), zap.Error(err))
		return apperr.FromDB(err, "Failed to delete vendor")
	}
	logger.WithCtx(ctx).Info("vendor deleted", zap.Int64("id", id))
	return nil
}

func (s *vendorService) checkEmail(ctx context.Context, email string, exceptID int64) error {
	taken, err := s.repo.EmailTaken(ctx, email, exceptID)
	if err != nil {
		return apperr.FromDB(err, "Failed to check vendor email")
	}
	if taken {
		return apperr.Duplicate("Duplicate vendor", "A vendor with this email already exists")
	}
	return nil
}

// vendorFromRequest validates req and converts it to a row. Blank email and
// phone become NULL; a missing status means active.
func vendorFromRequest(req models.VendorRequest) (*models.Vendor, error) {
	req.Name = strings.TrimSpace(req.Name)
	fields, err := checkStruct(req)
	if err != nil {
		return nil, apperr.Internal("Validation failed", err)
	}
	for _, f := range fields {
		switch f {
		case "name":
			return nil, apperr.Validation("Validation failed", "Vendor name is required", "name")
		case "status":
			return nil, apperr.Validation("Validation failed", "Vendor status must be active or inactive", "status")
		}
	}

	v := &models.Vendor{
		Name:   req.Name,
		Email:  nullIfBlank(req.Email),
		Phone:  nullIfBlank(req.Phone),
		Status: req.Status,
	}
	if v.Status == "" {
		v.Status = models.VendorActive
	}
	return v, nil
}

func nullIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func vendorWriteError(err error, message string) error {
	mapped := apperr.FromDB(err, message)
	if apperr.IsKind(mapped, apperr.KindDuplicate) {
		return apperr.Duplicate("Duplicate entry", "A vendor with this information already exists")
	}
	return mapped
}
