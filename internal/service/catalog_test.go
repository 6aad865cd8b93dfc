package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/stpaul_crime_api/internal/config"
	"github.com/shenikar/stpaul_crime_api/internal/models"
	"github.com/shenikar/stpaul_crime_api/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalogService(t *testing.T) (CatalogService, *mocks.MockCatalogRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCatalogRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{DBQueryTimeout: time.Second}
	return NewCatalogService(repoMock, logger, cfg), repoMock
}

func TestListCodes_FromCache(t *testing.T) {
	service, repoMock := newTestCatalogService(t)
	cached := []*models.Code{{Code: 110, Type: "Murder, Non Negligent Manslaughter"}}

	repoMock.EXPECT().GetCodesFromCache(gomock.Any(), "codes:all").Return(cached, nil).Times(1)
	repoMock.EXPECT().ListCodes(gomock.Any(), gomock.Any()).Times(0) // Бд не вызывается

	codes, err := service.ListCodes(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, cached, codes)
}

func TestListCodes_CacheMiss(t *testing.T) {
	service, repoMock := newTestCatalogService(t)
	fromDB := []*models.Code{
		{Code: 110, Type: "Murder, Non Negligent Manslaughter"},
		{Code: 120, Type: "Murder, Manslaughter By Negligence"},
	}

	repoMock.EXPECT().GetCodesFromCache(gomock.Any(), "codes:110,120").Return(nil, nil).Times(1)
	repoMock.EXPECT().ListCodes(gomock.Any(), []int{110, 120}).Return(fromDB, nil).Times(1)
	repoMock.EXPECT().SetCodesCache(gomock.Any(), "codes:110,120", fromDB).Return(nil).Times(1)

	codes, err := service.ListCodes(context.Background(), []int{110, 120})

	require.NoError(t, err)
	assert.Equal(t, fromDB, codes)
}

func TestListCodes_CacheErrorFallsBackToDB(t *testing.T) {
	service, repoMock := newTestCatalogService(t)
	fromDB := []*models.Code{{Code: 110, Type: "Murder"}}

	repoMock.EXPECT().GetCodesFromCache(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis: connection refused")).Times(1)
	repoMock.EXPECT().ListCodes(gomock.Any(), gomock.Nil()).Return(fromDB, nil).Times(1)
	repoMock.EXPECT().SetCodesCache(gomock.Any(), gomock.Any(), fromDB).Return(errors.New("redis: connection refused")).Times(1)

	codes, err := service.ListCodes(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, fromDB, codes)
}

func TestListCodes_StorageError(t *testing.T) {
	service, repoMock := newTestCatalogService(t)

	repoMock.EXPECT().GetCodesFromCache(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListCodes(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: boom", models.ErrStorage)).Times(1)
	repoMock.EXPECT().SetCodesCache(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ListCodes(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStorage)
}

func TestListNeighborhoods_CacheMiss(t *testing.T) {
	service, repoMock := newTestCatalogService(t)
	fromDB := []*models.Neighborhood{{ID: 1, Name: "Conway/Battlecreek/Highwood"}}

	repoMock.EXPECT().GetNeighborhoodsFromCache(gomock.Any(), "neighborhoods:all").Return(nil, nil).Times(1)
	repoMock.EXPECT().ListNeighborhoods(gomock.Any(), gomock.Nil()).Return(fromDB, nil).Times(1)
	repoMock.EXPECT().SetNeighborhoodsCache(gomock.Any(), "neighborhoods:all", fromDB).Return(nil).Times(1)

	neighborhoods, err := service.ListNeighborhoods(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, fromDB, neighborhoods)
}

func TestListNeighborhoods_FromCache(t *testing.T) {
	service, repoMock := newTestCatalogService(t)
	cached := []*models.Neighborhood{{ID: 7, Name: "Frogtown"}}

	repoMock.EXPECT().GetNeighborhoodsFromCache(gomock.Any(), "neighborhoods:7").Return(cached, nil).Times(1)
	repoMock.EXPECT().ListNeighborhoods(gomock.Any(), gomock.Any()).Times(0)

	neighborhoods, err := service.ListNeighborhoods(context.Background(), []int{7})

	require.NoError(t, err)
	assert.Equal(t, cached, neighborhoods)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "codes:all", cacheKey("codes", nil))
	assert.Equal(t, "codes:300,100", cacheKey("codes", []int{300, 100}))
}
