package shared

import (
	"fmt"
	"voyage/shared/dto"
)

// FilterBy builds a single-condition equality filter on the given column.
func FilterBy(field, table string, value any) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByAll builds an AND group of equality filters, keyed by column name,
// in the order given.
func FilterByAll(table string, fields []string, values []any) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	for i, field := range fields {
		group.Filters = append(group.Filters, dto.Filter{
			Field:    field,
			Value:    values[i],
			Operator: dto.FilterOperatorEq,
			Table:    table,
		})
	}

	return group
}

// BuildCacheKey joins a cache prefix with its discriminating parts.
func BuildCacheKey(prefix string, parts ...any) string {
	key := prefix

	for _, part := range parts {
		key = fmt.Sprintf("%s:%v", key, part)
	}

	return key
}
