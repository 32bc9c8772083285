package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyage/infras/otel/mocks"
	"voyage/shared/dto"
	"voyage/shared/repository"
)

type tripRow struct {
	ID          int64  `column:"trip_id" db:"id"`
	Name        string `db:"name"`
	Description string `db:"description" table:"trip_detail"`
	Internal    string `db:"-"`
}

func (tripRow) GetJoinQuery() string {
	return "JOIN trip_detail ON trip.trip_id = trip_detail.trip_id"
}

type flatRow struct {
	ID    int64  `db:"row_id" insert:"skip"`
	Email string `db:"email"`
}

func TestNewRepository_InsertColumns(t *testing.T) {
	tests := []struct {
		name string
		want []string
		got  func() []string
	}{
		{
			name: "serial primary key is skipped",
			want: []string{"email"},
			got: func() []string {
				repo := repository.NewRepository[flatRow]("flat", "flat", "row_id", nil, mocks.NewOtel())

				return repo.InsertColumns
			},
		},
		{
			name: "joined table and ignored columns are excluded",
			want: []string{"id", "name"},
			got: func() []string {
				repo := repository.NewRepository[tripRow]("trip", "trip", "trip_id", nil, mocks.NewOtel())

				return repo.InsertColumns
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got())
		})
	}
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := repository.NewRepository[flatRow]("flat", "flat", "row_id", nil, mocks.NewOtel())

	tests := []struct {
		name      string
		filter    dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty filter yields no clause",
			filter:    dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "single condition",
			filter: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "email", Value: "anna@example.com", Operator: dto.FilterOperatorEq, Table: "flat"},
				},
			},
			wantWhere: " WHERE (flat.email = :email) ",
			wantArgs:  map[string]any{"email": "anna@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := repo.BuildWhereClause(context.Background(), tt.filter)

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
