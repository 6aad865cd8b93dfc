package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/stpaul_crime_api/internal/config"
	"github.com/shenikar/stpaul_crime_api/internal/models"
	"github.com/shenikar/stpaul_crime_api/internal/service"
	servicemocks "github.com/shenikar/stpaul_crime_api/internal/service/mocks"
	"github.com/shenikar/stpaul_crime_api/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memIncidentRepository - хранилище в памяти с той же семантикой фильтра, что и SQL-запрос
type memIncidentRepository struct {
	mu        sync.Mutex
	incidents map[string]models.Incident
}

var _ service.IncidentRepository = (*memIncidentRepository)(nil)

func newMemIncidentRepository(seed ...models.Incident) *memIncidentRepository {
	repo := &memIncidentRepository{incidents: make(map[string]models.Incident)}
	for _, inc := range seed {
		repo.incidents[inc.CaseNumber] = inc
	}
	return repo
}

func (r *memIncidentRepository) List(_ context.Context, f models.IncidentFilter) ([]*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Incident, 0)
	for _, inc := range r.incidents {
		inc := inc
		if f.StartDate != "" && inc.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && inc.Date > f.EndDate {
			continue
		}
		if f.Codes != nil && !slices.Contains(f.Codes, inc.Code) {
			continue
		}
		if f.Grids != nil && !slices.Contains(f.Grids, inc.PoliceGrid) {
			continue
		}
		if f.Neighborhoods != nil && !slices.Contains(f.Neighborhoods, inc.NeighborhoodNumber) {
			continue
		}
		result = append(result, &inc)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date+result[i].Time > result[j].Date+result[j].Time
	})
	if len(result) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}

func (r *memIncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.incidents[incident.CaseNumber]; ok {
		return fmt.Errorf("create incident: %w", models.ErrIncidentExists)
	}
	r.incidents[incident.CaseNumber] = *incident
	return nil
}

func (r *memIncidentRepository) Delete(_ context.Context, caseNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.incidents[caseNumber]; !ok {
		return models.ErrIncidentNotFound
	}
	delete(r.incidents, caseNumber)
	return nil
}

// newMemRouter собирает handler -> service -> хранилище в памяти
func newMemRouter(t *testing.T, repo *memIncidentRepository) *gin.Engine {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockWebhookPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{DBQueryTimeout: time.Second}

	incidentService := service.NewIncidentService(repo, logger, cfg, publisher)
	handler := NewHandler(incidentService, servicemocks.NewMockCatalogService(ctrl), logger, cfg)
	return newTestRouter(handler, logger)
}

func seedIncidents(n int) []models.Incident {
	base := time.Date(2023, 1, 1, 8, 0, 0, 0, time.UTC)
	codes := []int{110, 120, 210, 300}
	incidents := make([]models.Incident, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * 7 * time.Hour)
		incidents = append(incidents, models.Incident{
			CaseNumber:         fmt.Sprintf("23%06d", i),
			Date:               ts.Format(models.DateLayout),
			Time:               ts.Format(models.TimeLayout),
			Code:               codes[i%len(codes)],
			Incident:           "Theft",
			PoliceGrid:         80 + i%5,
			NeighborhoodNumber: 1 + i%17,
			Block:              "98X UNIVERSITY AV W",
		})
	}
	return incidents
}

func getIncidents(t *testing.T, router *gin.Engine, query string) []IncidentResponse {
	t.Helper()
	w := makeRequest(router, "GET", "/incidents"+query, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMemStore_DefaultListingIsDescendingAndCapped(t *testing.T) {
	router := newMemRouter(t, newMemIncidentRepository(seedIncidents(1200)...))

	resp := getIncidents(t, router, "")

	require.Len(t, resp, models.DefaultIncidentLimit)
	for i := 1; i < len(resp); i++ {
		prev := resp[i-1].Date + " " + resp[i-1].Time
		cur := resp[i].Date + " " + resp[i].Time
		assert.Greater(t, prev, cur, "row %d out of order", i)
	}
}

func TestMemStore_LimitReturnsMostRecent(t *testing.T) {
	router := newMemRouter(t, newMemIncidentRepository(seedIncidents(5)...))

	resp := getIncidents(t, router, "?limit=2")

	require.Len(t, resp, 2)
	assert.Equal(t, "23000004", resp[0].CaseNumber)
	assert.Equal(t, "23000003", resp[1].CaseNumber)
}

func TestMemStore_CodeFilter(t *testing.T) {
	router := newMemRouter(t, newMemIncidentRepository(seedIncidents(40)...))

	resp := getIncidents(t, router, "?code=110,120")

	require.NotEmpty(t, resp)
	for _, inc := range resp {
		assert.Contains(t, []int{110, 120}, inc.Code)
	}
	assert.Len(t, resp, 20)
}

func TestMemStore_DateRangeIsInclusive(t *testing.T) {
	router := newMemRouter(t, newMemIncidentRepository(seedIncidents(40)...))

	resp := getIncidents(t, router, "?start_date=2023-01-02&end_date=2023-01-03")

	require.NotEmpty(t, resp)
	dates := make(map[string]bool)
	for _, inc := range resp {
		assert.GreaterOrEqual(t, inc.Date, "2023-01-02")
		assert.LessOrEqual(t, inc.Date, "2023-01-03")
		dates[inc.Date] = true
	}
	assert.True(t, dates["2023-01-02"])
	assert.True(t, dates["2023-01-03"])
}

func TestMemStore_EmptyResultIsEmptyList(t *testing.T) {
	router := newMemRouter(t, newMemIncidentRepository(seedIncidents(5)...))

	w := makeRequest(router, "GET", "/incidents?code=999", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMemStore_CreateThenDuplicate(t *testing.T) {
	router := newMemRouter(t, newMemIncidentRepository())
	body, err := json.Marshal(validNewIncident())
	require.NoError(t, err)

	w := makeRequest(router, "PUT", "/new-incident", bytes.NewBuffer(body))
	require.Equal(t, http.StatusOK, w.Code)

	resp := getIncidents(t, router, "")
	require.Len(t, resp, 1)
	assert.Equal(t, "23000123", resp[0].CaseNumber)
	assert.Equal(t, "2023-01-15", resp[0].Date)
	assert.Equal(t, "21:04:30", resp[0].Time)

	w = makeRequest(router, "PUT", "/new-incident", bytes.NewBuffer(body))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, getIncidents(t, router, ""), 1)
}

func TestMemStore_RemoveThenAbsent(t *testing.T) {
	router := newMemRouter(t, newMemIncidentRepository(seedIncidents(3)...))

	w := makeRequest(router, "DELETE", "/remove-incident", bytes.NewBufferString(`{"case_number":"23000001"}`))
	require.Equal(t, http.StatusOK, w.Code)

	for _, inc := range getIncidents(t, router, "") {
		assert.NotEqual(t, "23000001", inc.CaseNumber)
	}

	w = makeRequest(router, "DELETE", "/remove-incident", bytes.NewBufferString(`{"case_number":"23000001"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
