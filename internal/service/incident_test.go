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
	"github.com/shenikar/stpaul_crime_api/internal/webhook"
	webhook_mocks "github.com/shenikar/stpaul_crime_api/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DBQueryTimeout: 50 * time.Millisecond,
	}

	service := NewIncidentService(repoMock, logger, cfg, webhookMock)
	return service.(*incidentService), repoMock, webhookMock
}

func testIncident() *models.Incident {
	return &models.Incident{
		CaseNumber:         "23000123",
		Date:               "2023-01-15",
		Time:               "21:04:30",
		Code:               110,
		Incident:           "Murder, Non Negligent Manslaughter",
		PoliceGrid:         87,
		NeighborhoodNumber: 7,
		Block:              "98X UNIVERSITY AV W",
	}
}

func TestListIncidents_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	filter := models.IncidentFilter{Codes: []int{110}, Limit: 2}
	expected := []*models.Incident{testIncident()}

	// Ожидания
	repoMock.EXPECT().
		List(gomock.Any(), filter).
		DoAndReturn(func(ctx context.Context, _ models.IncidentFilter) ([]*models.Incident, error) {
			// Вызов хранилища ограничен по времени
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return expected, nil
		}).
		Times(1)

	// Действие
	incidents, err := service.ListIncidents(context.Background(), filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListIncidents_StorageError(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	storageErr := fmt.Errorf("%w: connection refused", models.ErrStorage)

	repoMock.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, storageErr).Times(1)

	incidents, err := service.ListIncidents(context.Background(), models.IncidentFilter{Limit: 10})

	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.ErrorContains(t, err, "could not list incidents")
}

func TestListIncidents_TimeoutSurfacesAsStorageError(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)

	repoMock.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.IncidentFilter) ([]*models.Incident, error) {
			<-ctx.Done()
			// так ведет себя репозиторий: ошибки драйвера заворачиваются в ErrStorage
			return nil, fmt.Errorf("%w: %w", models.ErrStorage, ctx.Err())
		}).
		Times(1)

	_, err := service.ListIncidents(context.Background(), models.IncidentFilter{Limit: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCreateIncident_Success(t *testing.T) {
	service, repoMock, webhookMock := newTestIncidentService(t)
	incident := testIncident()

	repoMock.EXPECT().Create(gomock.Any(), incident).Return(nil).Times(1)
	webhookMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventIncidentCreated, event.Type)
			assert.Equal(t, incident.CaseNumber, event.CaseNumber)
			assert.Equal(t, incident, event.Incident)
			return nil
		}).
		Times(1)

	err := service.CreateIncident(context.Background(), incident)

	require.NoError(t, err)
}

func TestCreateIncident_Duplicate(t *testing.T) {
	service, repoMock, webhookMock := newTestIncidentService(t)
	incident := testIncident()

	repoMock.EXPECT().
		Create(gomock.Any(), incident).
		Return(fmt.Errorf("failed to create incident: %w", models.ErrIncidentExists)).
		Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0) // Событие не публикуется

	err := service.CreateIncident(context.Background(), incident)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIncidentExists)
}

func TestCreateIncident_PublishErrorIgnored(t *testing.T) {
	service, repoMock, webhookMock := newTestIncidentService(t)
	incident := testIncident()

	repoMock.EXPECT().Create(gomock.Any(), incident).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	err := service.CreateIncident(context.Background(), incident)

	require.NoError(t, err)
}

func TestRemoveIncident_Success(t *testing.T) {
	service, repoMock, webhookMock := newTestIncidentService(t)

	repoMock.EXPECT().Delete(gomock.Any(), "23000123").Return(nil).Times(1)
	webhookMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventIncidentRemoved, event.Type)
			assert.Equal(t, "23000123", event.CaseNumber)
			assert.Nil(t, event.Incident)
			return nil
		}).
		Times(1)

	err := service.RemoveIncident(context.Background(), "23000123")

	require.NoError(t, err)
}

func TestRemoveIncident_NotFound(t *testing.T) {
	service, repoMock, webhookMock := newTestIncidentService(t)

	repoMock.EXPECT().
		Delete(gomock.Any(), "missing").
		Return(fmt.Errorf("incident with case_number missing: %w", models.ErrIncidentNotFound)).
		Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := service.RemoveIncident(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}
