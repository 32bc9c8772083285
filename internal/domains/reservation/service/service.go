package service

import (
	"context"
	"fmt"
	"voyage/config"
	"voyage/infras/otel"
	"voyage/internal/domains/reservation/model"
	"voyage/internal/domains/reservation/model/dto"
	"voyage/internal/domains/reservation/repository"
	"voyage/shared"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	CheckConfirmed(ctx context.Context, customerID, offerID int64) (dto.ConfirmedResponse, error)
	Create(ctx context.Context, customerID, offerID int64) (dto.ConfirmedResponse, error)
	GetReservedTrips(ctx context.Context, customerID int64) (dto.ReservedTripsResponse, error)
	Cancel(ctx context.Context, customerID, offerID int64) (dto.CancelledResponse, error)
	UpdateSeats(ctx context.Context, customerID, offerID int64, seats int) (dto.ConfirmedResponse, error)
}

type serviceImpl struct {
	repo repository.Reservation
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func confirmedFilter(customerID, offerID int64) gDto.FilterGroup {
	return shared.FilterByAll(
		model.TableName,
		[]string{model.FieldCustomerID, model.FieldOfferID, model.FieldStatus},
		[]any{customerID, offerID, constant.StatusConfirmed},
	)
}

// CheckConfirmed reports whether the customer holds a confirmed reservation
// for the offer.
func (s *serviceImpl) CheckConfirmed(ctx context.Context, customerID, offerID int64) (res dto.ConfirmedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckConfirmed")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, confirmedFilter(customerID, offerID))
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Int64("offer_id", offerID).Msg("failed to check reservation")

		return res, fmt.Errorf("failed to check reservation: %w", err)
	}

	res.Confirmed = exist

	return res, nil
}

// Create books the offer for the customer with today's date, one seat and a
// confirmed status. Remaining capacity is not checked and duplicates are
// allowed; the booking row is all there is.
func (s *serviceImpl) Create(ctx context.Context, customerID, offerID int64) (res dto.ConfirmedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation := model.Reservation{
		CustomerID: customerID,
		OfferID:    offerID,
		Date:       timezone.Today(),
		Seats:      1,
		Status:     constant.StatusConfirmed,
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Int64("offer_id", offerID).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.Confirmed = true

	return res, nil
}

func (s *serviceImpl) GetReservedTrips(ctx context.Context, customerID int64) (res dto.ReservedTripsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservedTrips")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.FieldCustomerID, customerID)

	models, err := s.repo.GetReservedTrips(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get reserved trips")

		return res, fmt.Errorf("failed to get reserved trips: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// Cancel hard-deletes the confirmed reservation and reports whether a row
// was actually removed.
func (s *serviceImpl) Cancel(ctx context.Context, customerID, offerID int64) (res dto.CancelledResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Delete(ctx, confirmedFilter(customerID, offerID))
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Int64("offer_id", offerID).Msg("failed to cancel reservation")

		return res, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	res.Cancelled = removed > 0

	return res, nil
}

// UpdateSeats overwrites the seat count on the customer's reservation for the
// offer. The response confirms whenever the statement succeeds, including
// when no reservation matched.
func (s *serviceImpl) UpdateSeats(ctx context.Context, customerID, offerID int64, seats int) (res dto.ConfirmedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSeats")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByAll(
		model.TableName,
		[]string{model.FieldCustomerID, model.FieldOfferID},
		[]any{customerID, offerID},
	)

	if err = s.repo.Update(ctx, map[string]any{model.FieldSeats: seats}, filter); err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Int64("offer_id", offerID).Msg("failed to update seats")

		return res, fmt.Errorf("failed to update seats: %w", err)
	}

	res.Confirmed = true

	return res, nil
}
