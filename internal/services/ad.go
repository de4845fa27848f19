package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"blogger/internal/apperr"
	"blogger/internal/logger"
	"blogger/internal/models"
	"blogger/internal/repository"

	"go.uber.org/zap"
)

type AdService interface {
	List(ctx context.Context) ([]models.Ad, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]models.Ad, error)
	SaveAll(ctx context.Context, req models.SaveAdsRequest) error
	Delete(ctx context.Context, id int64) error
}

type adService struct {
	repo repository.AdRepo
}

func NewAdService(repo repository.AdRepo) AdService {
	return &adService{repo: repo}
}

func (s *adService) List(ctx context.Context) ([]models.Ad, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("list ads", zap.Error(err))
		return nil, apperr.FromDB(err, "Failed to fetch ads")
	}
	return list, nil
}

func (s *adService) ListByVendor(ctx context.Context, vendorID int64) ([]models.Ad, error) {
	list, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		logger.WithCtx(ctx).Error("list vendor ads", zap.Int64("vendor_id", vendorID), zap.Error(err))
		return nil, apperr.FromDB(err, "Failed to fetch vendor ads")
	}
	return list, nil
}

// SaveAll replaces the vendor's whole ad set. An empty adEntries array clears
// it. Nothing is written unless every entry is valid.
func (s *adService) SaveAll(ctx context.Context, req models.SaveAdsRequest) error {
	log := logger.WithCtx(ctx)

	vendorID := req.VendorID.Int64()
	if vendorID <= 0 {
		return apperr.Validation("Validation failed", "Vendor ID is required", "vendorId")
	}

	entries, err := parseAdEntries(req.AdEntries)
	if err != nil {
		log.Warn("save ads: validation failed", zap.Int64("vendor_id", vendorID), zap.Error(err))
		return err
	}

	log.Info("save ads", zap.Int64("vendor_id", vendorID), zap.Int("entries", len(entries)))

	if err := s.repo.ReplaceForVendor(ctx, vendorID, entries); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Vendor not found")
		}
		mapped := apperr.FromDB(err, "Failed to save ads")
		if apperr.IsKind(mapped, apperr.KindDuplicate) {
			log.Warn("save ads: duplicate location", zap.Int64("vendor_id", vendorID), zap.Error(err))
			dup := apperr.Duplicate("Duplicate entry", "A duplicate ad location entry exists for this vendor")
			dup.Code = apperr.CodeUniqueViolation
			dup.Cause = err
			return dup
		}
		log.Error("save ads: rolled back", zap.Int64("vendor_id", vendorID), zap.Error(err))
		return mapped
	}

	log.Info("ads saved", zap.Int64("vendor_id", vendorID), zap.Int("entries", len(entries)))
	return nil
}

func (s *adService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Ad not found")
		}
		logger.WithCtx(ctx).Error("delete ad", zap.Int64("id", id), zap.Error(err))
		return apperr.FromDB(err, "Failed to delete ad")
	}
	logger.WithCtx(ctx).Info("ad deleted", zap.Int64("id", id))
	return nil
}

// parseAdEntries decodes the raw adEntries value, stopping at the first
// entry without a locationId or adCode.
func parseAdEntries(raw json.RawMessage) ([]models.AdEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, apperr.Validation("Validation failed", "Ad entries are required", "adEntries")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperr.Validation("Validation failed", "Ad entries must be an array", "adEntries")
	}

	entries := make([]models.AdEntry, 0, len(items))
	for i, item := range items {
		var e models.AdEntry
		if err := json.Unmarshal(item, &e); err != nil ||
			strings.TrimSpace(e.LocationID) == "" || strings.TrimSpace(e.AdCode) == "" {
			return nil, apperr.Validation("Validation failed",
				"Location ID and ad code are required for each entry",
				fmt.Sprintf("adEntries[%d]", i))
		}
		entries = append(entries, e)
	}
	return entries, nil
}
