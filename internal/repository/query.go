package repository

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // регистрация диалекта
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/shenikar/stpaul_crime_api/internal/models"
)

const (
	dialectPostgres = "postgres"

	tableIncidents     = "incidents"
	tableCodes         = "codes"
	tableNeighborhoods = "neighborhoods"

	colCaseNumber         = "case_number"
	colDateTime           = "date_time"
	colCode               = "code"
	colIncident           = "incident"
	colPoliceGrid         = "police_grid"
	colNeighborhoodNumber = "neighborhood_number"
	colBlock              = "block"
	colIncidentType       = "incident_type"
	colNeighborhoodName   = "neighborhood_name"
)

var (
	incidentDate = goqu.L("to_char(date_time, 'YYYY-MM-DD')")
	incidentTime = goqu.L("to_char(date_time, 'HH24:MI:SS')")
)

// BuildIncidentsQuery собирает параметризованный запрос списка инцидентов.
// Для одного и того же фильтра возвращает одинаковые SQL и порядок аргументов.
func BuildIncidentsQuery(f models.IncidentFilter) (string, []any, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(tableIncidents).
		Prepared(true).
		Select(
			goqu.C(colCaseNumber),
			incidentDate.As("date"),
			incidentTime.As("time"),
			goqu.C(colCode),
			goqu.C(colIncident),
			goqu.C(colPoliceGrid),
			goqu.C(colNeighborhoodNumber),
			goqu.C(colBlock),
		)

	if predicates := incidentPredicates(f); len(predicates) > 0 {
		stmt = stmt.Where(goqu.And(predicates...))
	}

	stmt = stmt.
		Order(goqu.C(colDateTime).Desc()).
		Limit(uint(f.Limit))

	query, args, err := stmt.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build incidents query: %w", err)
	}
	return query, args, nil
}

// incidentPredicates возвращает по одному условию на каждое заданное измерение фильтра
func incidentPredicates(f models.IncidentFilter) []exp.Expression {
	predicates := make([]exp.Expression, 0, 5)

	if f.StartDate != "" {
		predicates = append(predicates, incidentDate.Gte(f.StartDate))
	}
	if f.EndDate != "" {
		predicates = append(predicates, incidentDate.Lte(f.EndDate))
	}
	if f.Codes != nil {
		predicates = append(predicates, goqu.C(colCode).In(f.Codes))
	}
	if f.Grids != nil {
		predicates = append(predicates, goqu.C(colPoliceGrid).In(f.Grids))
	}
	if f.Neighborhoods != nil {
		predicates = append(predicates, goqu.C(colNeighborhoodNumber).In(f.Neighborhoods))
	}

	return predicates
}

// BuildCodesQuery собирает запрос списка кодов, отсортированных по возрастанию
func BuildCodesQuery(codes []int) (string, []any, error) {
	return buildCatalogQuery(tableCodes, colCode, colIncidentType, "type", codes)
}

// BuildNeighborhoodsQuery собирает запрос списка районов, отсортированных по возрастанию
func BuildNeighborhoodsQuery(ids []int) (string, []any, error) {
	return buildCatalogQuery(tableNeighborhoods, colNeighborhoodNumber, colNeighborhoodName, "name", ids)
}

func buildCatalogQuery(table, keyCol, labelCol, labelAlias string, keys []int) (string, []any, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(table).
		Prepared(true).
		Select(goqu.C(keyCol), goqu.C(labelCol).As(labelAlias)).
		Order(goqu.C(keyCol).Asc())

	if keys != nil {
		stmt = stmt.Where(goqu.C(keyCol).In(keys))
	}

	query, args, err := stmt.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}
	return query, args, nil
}
