package models

// DefaultIncidentLimit - количество инцидентов в ответе, если limit не передан
const DefaultIncidentLimit = 1000

// IncidentFilter - провалидированный набор фильтров для списка инцидентов.
// Создается на каждый запрос и не переиспользуется.
// Пустая дата или nil-срез означает, что фильтр по измерению не задан.
type IncidentFilter struct {
	StartDate     string
	EndDate       string
	Codes         []int
	Grids         []int
	Neighborhoods []int
	Limit         int
}
