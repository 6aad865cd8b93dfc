// Package filter разбирает и валидирует параметры запроса списка инцидентов.
// Каждое измерение проверяется своим правилом; первая ошибка прерывает разбор.
package filter

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/shenikar/stpaul_crime_api/internal/models"
)

const (
	ParamStartDate    = "start_date"
	ParamEndDate      = "end_date"
	ParamCode         = "code"
	ParamGrid         = "grid"
	ParamNeighborhood = "neighborhood"
	ParamLimit        = "limit"
)

// Проверяется только формат, календарная корректность (месяц 13) не проверяется.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseIncidentFilter превращает параметры запроса в IncidentFilter.
// Отсутствующий параметр означает отсутствие фильтра по измерению.
func ParseIncidentFilter(params url.Values) (models.IncidentFilter, error) {
	f := models.IncidentFilter{Limit: models.DefaultIncidentLimit}
	var err error

	if f.StartDate, err = parseDate(params, ParamStartDate); err != nil {
		return models.IncidentFilter{}, err
	}
	if f.EndDate, err = parseDate(params, ParamEndDate); err != nil {
		return models.IncidentFilter{}, err
	}
	if f.Codes, err = ParseOptionalIntList(params, ParamCode); err != nil {
		return models.IncidentFilter{}, err
	}
	if f.Grids, err = ParseOptionalIntList(params, ParamGrid); err != nil {
		return models.IncidentFilter{}, err
	}
	if f.Neighborhoods, err = ParseOptionalIntList(params, ParamNeighborhood); err != nil {
		return models.IncidentFilter{}, err
	}
	if f.Limit, err = parseLimit(params); err != nil {
		return models.IncidentFilter{}, err
	}

	return f, nil
}

// ParseOptionalIntList возвращает nil, если параметра нет в запросе,
// иначе разбирает его как список целых чисел через запятую.
func ParseOptionalIntList(params url.Values, field string) ([]int, error) {
	if !params.Has(field) {
		return nil, nil
	}
	return ParseIntList(field, params.Get(field))
}

// ParseIntList разбирает список целых чисел через запятую.
// Пустые сегменты отбрасываются; пустой итоговый список - ошибка.
// Значения ограничены диапазоном INTEGER в Postgres (int32).
func ParseIntList(field, raw string) ([]int, error) {
	values := make([]int, 0)
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		value, err := strconv.ParseInt(segment, 10, 32)
		if errors.Is(err, strconv.ErrRange) {
			return nil, models.NewValidationError(field, "value "+segment+" is out of range")
		}
		if err != nil {
			return nil, models.NewValidationError(field, "must be a comma-separated list of integers")
		}
		values = append(values, int(value))
	}

	if len(values) == 0 {
		return nil, models.NewValidationError(field, "must contain at least one integer")
	}
	return values, nil
}

func parseDate(params url.Values, field string) (string, error) {
	if !params.Has(field) {
		return "", nil
	}
	value := params.Get(field)
	if !datePattern.MatchString(value) {
		return "", models.NewValidationError(field, "must be in YYYY-MM-DD format")
	}
	return value, nil
}

func parseLimit(params url.Values) (int, error) {
	raw := strings.TrimSpace(params.Get(ParamLimit))
	if raw == "" {
		return models.DefaultIncidentLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, models.NewValidationError(ParamLimit, "must be a positive integer")
	}
	return limit, nil
}
