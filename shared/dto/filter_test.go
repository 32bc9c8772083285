package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyage/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table",
			filter: dto.Filter{
				Field:    "customer_id",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
				Table:    "reservation",
			},
			wantWhere: "reservation.customer_id = :customer_id",
			wantArgs:  map[string]any{"customer_id": int64(7)},
		},
		{
			name: "equality without table",
			filter: dto.Filter{
				Field:    "email",
				Value:    "anna@example.com",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "email = :email",
			wantArgs:  map[string]any{"email": "anna@example.com"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "status_arg",
				Field:    "status",
				Value:    "confirmed",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "status = :status_arg",
			wantArgs:  map[string]any{"status_arg": "confirmed"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "email",
				Operator: dto.FilterIsNull,
			},
			wantWhere: "email IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "email",
				Operator: "bogus",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "and group",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "customer_id", Value: int64(7), Operator: dto.FilterOperatorEq, Table: "reservation"},
					dto.Filter{Field: "offer_id", Value: int64(1), Operator: dto.FilterOperatorEq, Table: "reservation"},
				},
			},
			wantWhere: "(reservation.customer_id = :customer_id AND reservation.offer_id = :offer_id)",
			wantArgs:  map[string]any{"customer_id": int64(7), "offer_id": int64(1)},
		},
		{
			name: "missing operator defaults to and",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "customer_id", Value: int64(7), Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
				},
			},
			wantWhere: "(customer_id = :customer_id AND status = :status)",
			wantArgs:  map[string]any{"customer_id": int64(7), "status": "confirmed"},
		},
		{
			name: "nested group",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "email", Value: "anna@example.com", Operator: dto.FilterOperatorEq},
					dto.FilterGroup{
						Operator: dto.FilterGroupOperatorAnd,
						Filters: []any{
							dto.Filter{Field: "phone_number", Value: "48123456789", Operator: dto.FilterOperatorEq},
						},
					},
				},
			},
			wantWhere: "(email = :email OR (phone_number = :phone_number))",
			wantArgs:  map[string]any{"email": "anna@example.com", "phone_number": "48123456789"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
