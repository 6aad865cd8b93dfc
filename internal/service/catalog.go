package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/stpaul_crime_api/internal/config"
	"github.com/shenikar/stpaul_crime_api/internal/metrics"
	"github.com/shenikar/stpaul_crime_api/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// CatalogRepository определяет контракт для справочников кодов и районов
type CatalogRepository interface {
	ListCodes(ctx context.Context, codes []int) ([]*models.Code, error)
	ListNeighborhoods(ctx context.Context, ids []int) ([]*models.Neighborhood, error)
	GetCodesFromCache(ctx context.Context, key string) ([]*models.Code, error)
	SetCodesCache(ctx context.Context, key string, codes []*models.Code) error
	GetNeighborhoodsFromCache(ctx context.Context, key string) ([]*models.Neighborhood, error)
	SetNeighborhoodsCache(ctx context.Context, key string, neighborhoods []*models.Neighborhood) error
}

// CatalogService определяет контракт для чтения справочников
type CatalogService interface {
	ListCodes(ctx context.Context, codes []int) ([]*models.Code, error)
	ListNeighborhoods(ctx context.Context, ids []int) ([]*models.Neighborhood, error)
}

type catalogService struct {
	repo   CatalogRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewCatalogService(repo CatalogRepository, logger *logrus.Logger, cfg *config.Config) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// ListCodes возвращает коды инцидентов, сначала пытаясь взять их из кэша
func (s *catalogService) ListCodes(ctx context.Context, codes []int) ([]*models.Code, error) {
	key := cacheKey("codes", codes)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "catalog",
		"method":    "ListCodes",
		"cache_key": key,
	})

	cached, err := s.repo.GetCodesFromCache(ctx, key)
	switch {
	case err != nil:
		metrics.RecordCache("codes", "error")
		log.WithError(err).Warn("Failed to read codes from cache, falling back to database")
	case cached != nil:
		metrics.RecordCache("codes", "hit")
		log.Debug("Codes served from cache")
		return cached, nil
	default:
		metrics.RecordCache("codes", "miss")
	}

	dbCtx, cancel := context.WithTimeout(ctx, s.cfg.DBQueryTimeout)
	defer cancel()

	result, err := s.repo.ListCodes(dbCtx, codes)
	if err != nil {
		log.WithError(err).Error("Failed to list codes from repository")
		return nil, fmt.Errorf("service: could not list codes: %w", err)
	}

	if err := s.repo.SetCodesCache(ctx, key, result); err != nil {
		log.WithError(err).Warn("Failed to cache codes")
	}
	return result, nil
}

// ListNeighborhoods возвращает районы, сначала пытаясь взять их из кэша
func (s *catalogService) ListNeighborhoods(ctx context.Context, ids []int) ([]*models.Neighborhood, error) {
	key := cacheKey("neighborhoods", ids)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "catalog",
		"method":    "ListNeighborhoods",
		"cache_key": key,
	})

	cached, err := s.repo.GetNeighborhoodsFromCache(ctx, key)
	switch {
	case err != nil:
		metrics.RecordCache("neighborhoods", "error")
		log.WithError(err).Warn("Failed to read neighborhoods from cache, falling back to database")
	case cached != nil:
		metrics.RecordCache("neighborhoods", "hit")
		log.Debug("Neighborhoods served from cache")
		return cached, nil
	default:
		metrics.RecordCache("neighborhoods", "miss")
	}

	dbCtx, cancel := context.WithTimeout(ctx, s.cfg.DBQueryTimeout)
	defer cancel()

	result, err := s.repo.ListNeighborhoods(dbCtx, ids)
	if err != nil {
		log.WithError(err).Error("Failed to list neighborhoods from repository")
		return nil, fmt.Errorf("service: could not list neighborhoods: %w", err)
	}

	if err := s.repo.SetNeighborhoodsCache(ctx, key, result); err != nil {
		log.WithError(err).Warn("Failed to cache neighborhoods")
	}
	return result, nil
}

// cacheKey строит ключ кэша: "codes:all" или "codes:110,120"
func cacheKey(prefix string, ids []int) string {
	if ids == nil {
		return prefix + ":all"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return prefix + ":" + strings.Join(parts, ",")
}
