package postgres

import (
	"fmt"
	"strings"

	"realnest-backend/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: []string{"p.status = 'active'"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// Колонки, по которым разрешена сортировка выдачи. Все остальное
// молча заменяется на created_at.
var sortableColumns = map[string]string{
	"created_at": "p.created_at",
	"price":      "p.price",
	"area":       "p.area",
}

// orderClause строит ORDER BY по белому списку колонок.
func orderClause(sortBy, sortOrder string) string {
	column, ok := sortableColumns[sortBy]
	if !ok {
		column = "p.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

// applyFilters разбирает фильтры каталога и строит WHERE по объявлениям.
// Неактивные объявления в выдачу не попадают никогда.
func applyFilters(filters domain.PropertyFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	if filters.DealType != "" {
		qb.addCondition("%s = $%d", "p.type", filters.DealType)
	}
	if filters.PropertyType != "" {
		qb.addCondition("%s = $%d", "p.property_type", filters.PropertyType)
	}
	if filters.District != "" {
		qb.addCondition("%s = $%d", "p.district", filters.District)
	}
	if filters.Rooms != nil {
		qb.addCondition("%s = $%d", "p.rooms", *filters.Rooms)
	}

	qb.AddFloatFilter("p.price", filters.PriceMin, filters.PriceMax)
	qb.AddFloatFilter("p.area", filters.AreaMin, filters.AreaMax)

	return qb.build()
}
