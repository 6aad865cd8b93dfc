package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/stpaul_crime_api/internal/config"
	"github.com/shenikar/stpaul_crime_api/internal/models"
	"github.com/shenikar/stpaul_crime_api/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	Create(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, caseNumber string) error
}

// IncidentService определяет контракт бизнес-логики для инцидентов
type IncidentService interface {
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	RemoveIncident(ctx context.Context, caseNumber string) error
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// ListIncidents возвращает инциденты по провалидированному фильтру
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"limit":   filter.Limit,
	})
	log.Debug("Listing incidents")

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DBQueryTimeout)
	defer cancel()

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// CreateIncident сохраняет новый инцидент; дубликат case_number отклоняется
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CreateIncident",
		"case_number": incident.CaseNumber,
	})
	log.Info("Attempting to create a new incident")

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DBQueryTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, incident); err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrIncidentExists):
			log.WithError(err).Warn("Attempted to create a duplicate incident")
		case errors.As(err, &vErr):
			log.WithError(err).Warn("Incident rejected by storage constraints")
		default:
			log.WithError(err).Error("Failed to create incident in repository")
		}
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.Info("Incident created successfully")
	s.publish(ctx, log, webhook.EventIncidentCreated, incident.CaseNumber, incident)
	return nil
}

// RemoveIncident удаляет инцидент; отсутствующий case_number - ErrIncidentNotFound
func (s *incidentService) RemoveIncident(ctx context.Context, caseNumber string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RemoveIncident",
		"case_number": caseNumber,
	})
	log.Info("Attempting to remove incident")

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DBQueryTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, caseNumber); err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.WithError(err).Warn("Attempted to remove a non-existent incident")
		} else {
			log.WithError(err).Error("Failed to remove incident in repository")
		}
		return fmt.Errorf("service: could not remove incident: %w", err)
	}

	log.Info("Incident removed successfully")
	s.publish(ctx, log, webhook.EventIncidentRemoved, caseNumber, nil)
	return nil
}

// publish ставит событие в очередь вебхуков; ошибка публикации не влияет на ответ клиенту
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, eventType, caseNumber string, incident *models.Incident) {
	if s.publisher == nil {
		return
	}
	event := webhook.IncidentEvent{
		Type:       eventType,
		CaseNumber: caseNumber,
		Incident:   incident,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish incident event")
	}
}
