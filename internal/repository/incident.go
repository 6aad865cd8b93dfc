package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/stpaul_crime_api/internal/metrics"
	"github.com/shenikar/stpaul_crime_api/internal/models"
	"github.com/shenikar/stpaul_crime_api/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// List возвращает инциденты по фильтру, самые свежие первыми
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	const op = "list_incidents"
	defer metrics.ObserveDBQuery(op, time.Now())

	query, args, err := BuildIncidentsQuery(filter)
	if err != nil {
		metrics.RecordDBError(op, "build")
		return nil, fmt.Errorf("%w: %w", models.ErrStorage, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		metrics.RecordDBError(op, "query")
		return nil, classifyError("failed to list incidents", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.CaseNumber,
			&incident.Date,
			&incident.Time,
			&incident.Code,
			&incident.Incident,
			&incident.PoliceGrid,
			&incident.NeighborhoodNumber,
			&incident.Block,
		)
		if err != nil {
			metrics.RecordDBError(op, "scan")
			return nil, classifyError("failed to scan incident row", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBError(op, "iterate")
		return nil, classifyError("error list iteration", err)
	}
	return incidents, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	const op = "create_incident"
	defer metrics.ObserveDBQuery(op, time.Now())

	ts, err := incident.Timestamp()
	if err != nil {
		metrics.RecordDBError(op, "timestamp")
		return fmt.Errorf("%w: %w", models.ErrStorage, err)
	}

	query := `
		INSERT INTO incidents (case_number, date_time, code, incident, police_grid, neighborhood_number, block)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.db.Exec(ctx, query,
		incident.CaseNumber,
		ts,
		incident.Code,
		incident.Incident,
		incident.PoliceGrid,
		incident.NeighborhoodNumber,
		incident.Block,
	)
	if err != nil {
		err = classifyError("failed to create incident", err)
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrIncidentExists):
			metrics.RecordDBError(op, "conflict")
		case errors.As(err, &vErr):
			metrics.RecordDBError(op, "invalid_reference")
		default:
			metrics.RecordDBError(op, "exec")
		}
		return err
	}
	return nil
}

// Delete удаляет инцидент по case_number
func (r *IncidentRepository) Delete(ctx context.Context, caseNumber string) error {
	const op = "delete_incident"
	defer metrics.ObserveDBQuery(op, time.Now())

	query := `DELETE FROM incidents WHERE case_number = $1;`
	cmdTag, err := r.db.Exec(ctx, query, caseNumber)
	if err != nil {
		metrics.RecordDBError(op, "exec")
		return classifyError("failed to delete incident", err)
	}

	// RowsAffected() == 0 - инцидента с таким case_number не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with case_number %s: %w", caseNumber, models.ErrIncidentNotFound)
	}
	return nil
}
