package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/stpaul_crime_api/internal/metrics"
	"github.com/shenikar/stpaul_crime_api/internal/models"
	"github.com/shenikar/stpaul_crime_api/internal/service"
)

type CatalogRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCatalogRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.CatalogRepository {
	return &CatalogRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ListCodes возвращает коды инцидентов по возрастанию; nil - все коды
func (r *CatalogRepository) ListCodes(ctx context.Context, codes []int) ([]*models.Code, error) {
	const op = "list_codes"
	defer metrics.ObserveDBQuery(op, time.Now())

	query, args, err := BuildCodesQuery(codes)
	if err != nil {
		metrics.RecordDBError(op, "build")
		return nil, fmt.Errorf("%w: %w", models.ErrStorage, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		metrics.RecordDBError(op, "query")
		return nil, classifyError("failed to list codes", err)
	}
	defer rows.Close()

	result := make([]*models.Code, 0)
	for rows.Next() {
		code := &models.Code{}
		if err := rows.Scan(&code.Code, &code.Type); err != nil {
			metrics.RecordDBError(op, "scan")
			return nil, classifyError("failed to scan code row", err)
		}
		result = append(result, code)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBError(op, "iterate")
		return nil, classifyError("error codes iteration", err)
	}
	return result, nil
}

// ListNeighborhoods возвращает районы по возрастанию номера; nil - все районы
func (r *CatalogRepository) ListNeighborhoods(ctx context.Context, ids []int) ([]*models.Neighborhood, error) {
	const op = "list_neighborhoods"
	defer metrics.ObserveDBQuery(op, time.Now())

	query, args, err := BuildNeighborhoodsQuery(ids)
	if err != nil {
		metrics.RecordDBError(op, "build")
		return nil, fmt.Errorf("%w: %w", models.ErrStorage, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		metrics.RecordDBError(op, "query")
		return nil, classifyError("failed to list neighborhoods", err)
	}
	defer rows.Close()

	result := make([]*models.Neighborhood, 0)
	for rows.Next() {
		neighborhood := &models.Neighborhood{}
		if err := rows.Scan(&neighborhood.ID, &neighborhood.Name); err != nil {
			metrics.RecordDBError(op, "scan")
			return nil, classifyError("failed to scan neighborhood row", err)
		}
		result = append(result, neighborhood)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBError(op, "iterate")
		return nil, classifyError("error neighborhoods iteration", err)
	}
	return result, nil
}

// GetCodesFromCache пытается получить коды из Redis; промах - (nil, nil)
func (r *CatalogRepository) GetCodesFromCache(ctx context.Context, key string) ([]*models.Code, error) {
	var codes []*models.Code
	found, err := r.getCache(ctx, key, &codes)
	if err != nil || !found {
		return nil, err
	}
	return codes, nil
}

// SetCodesCache сохраняет коды в Redis
func (r *CatalogRepository) SetCodesCache(ctx context.Context, key string, codes []*models.Code) error {
	return r.setCache(ctx, key, codes)
}

// GetNeighborhoodsFromCache пытается получить районы из Redis; промах - (nil, nil)
func (r *CatalogRepository) GetNeighborhoodsFromCache(ctx context.Context, key string) ([]*models.Neighborhood, error) {
	var neighborhoods []*models.Neighborhood
	found, err := r.getCache(ctx, key, &neighborhoods)
	if err != nil || !found {
		return nil, err
	}
	return neighborhoods, nil
}

// SetNeighborhoodsCache сохраняет районы в Redis
func (r *CatalogRepository) SetNeighborhoodsCache(ctx context.Context, key string, neighborhoods []*models.Neighborhood) error {
	return r.setCache(ctx, key, neighborhoods)
}

func (r *CatalogRepository) getCache(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

func (r *CatalogRepository) setCache(ctx context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}
