package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"voyage/infras/otel"
	"voyage/infras/postgres"
	"voyage/internal/domains/reservation/model"
	"voyage/shared"
	gDto "voyage/shared/dto"
	gRepo "voyage/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	GetReservedTrips(ctx context.Context, customerID int64) ([]model.ReservedTrip, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	trips gRepo.Repository[model.ReservedTrip]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldReservationID, db, otel),
		trips:      gRepo.NewRepository[model.ReservedTrip](model.TripEntityName, model.OfferTableName, model.FieldOfferID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetReservedTrips lists the offers the customer holds reservations for,
// one row per reservation.
func (repo *repositoryImpl) GetReservedTrips(ctx context.Context, customerID int64) ([]model.ReservedTrip, error) {
	filter := shared.FilterBy(model.FieldCustomerID, model.TableName, customerID)

	return repo.trips.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
