package reservation

import (
	"net/http"
	"strconv"
	"voyage/infras/otel"
	"voyage/internal/domains/reservation/service"
	"voyage/shared/constant"
	"voyage/shared/failure"
	"voyage/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user/reservation", func(routerGroup chi.Router) {
		routerGroup.Get("/confirm/{customer_id}/{offer_id}", handler.CheckConfirmed)
		routerGroup.Put("/put/{customer_id}/{offer_id}", handler.CreateReservation)
		routerGroup.Get("/get/{customer_id}", handler.GetReservedTrips)
		routerGroup.Delete("/delete/{customer_id}/{offer_id}", handler.CancelReservation)
		routerGroup.Put("/seats/{customer_id}/{offer_id}/{num_seats}", handler.UpdateSeats)
	})
}

func pathInt64(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString(name + " must be numeric") //nolint:wrapcheck
	}

	return value, nil
}

// CheckConfirmed reports whether the customer holds a confirmed reservation.
// @Summary Check a reservation
// @Description Report whether the customer holds a confirmed reservation for the offer.
// @Tags Reservation
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param offer_id path int true "Offer ID"
// @Success 200 {object} dto.ConfirmedResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/reservation/confirm/{customer_id}/{offer_id} [get]
func (handler *Handler) CheckConfirmed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckConfirmed")
	defer scope.End()

	customerID, err := pathInt64(r, constant.RequestParamCustomerID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	offerID, err := pathInt64(r, constant.RequestParamOfferID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckConfirmed(ctx, customerID, offerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateReservation books the offer for the customer.
// @Summary Create a reservation
// @Description Book the offer for the customer with today's date, one seat and a confirmed status.
// @Tags Reservation
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param offer_id path int true "Offer ID"
// @Success 200 {object} dto.ConfirmedResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/reservation/put/{customer_id}/{offer_id} [put]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	customerID, err := pathInt64(r, constant.RequestParamCustomerID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	offerID, err := pathInt64(r, constant.RequestParamOfferID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, customerID, offerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservedTrips lists the offers the customer has reserved.
// @Summary Get reserved trips
// @Description List the offers the customer holds reservations for, one row per reservation.
// @Tags Reservation
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Success 200 {array} dto.ReservedTripResponse "Reserved trips"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/reservation/get/{customer_id} [get]
func (handler *Handler) GetReservedTrips(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservedTrips")
	defer scope.End()

	customerID, err := pathInt64(r, constant.RequestParamCustomerID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetReservedTrips(ctx, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reserved trips")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelReservation hard-deletes the confirmed reservation.
// @Summary Cancel a reservation
// @Description Delete the customer's confirmed reservation for the offer and report whether a row was removed.
// @Tags Reservation
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param offer_id path int true "Offer ID"
// @Success 200 {object} dto.CancelledResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/reservation/delete/{customer_id}/{offer_id} [delete]
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	customerID, err := pathInt64(r, constant.RequestParamCustomerID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	offerID, err := pathInt64(r, constant.RequestParamOfferID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Cancel(ctx, customerID, offerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation cancelled")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateSeats overwrites the seat count on the reservation.
// @Summary Update reservation seats
// @Description Overwrite the seat count on the customer's reservation for the offer.
// @Tags Reservation
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Param offer_id path int true "Offer ID"
// @Param num_seats path int true "Seat count"
// @Success 200 {object} dto.ConfirmedResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/reservation/seats/{customer_id}/{offer_id}/{num_seats} [put]
func (handler *Handler) UpdateSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSeats")
	defer scope.End()

	customerID, err := pathInt64(r, constant.RequestParamCustomerID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	offerID, err := pathInt64(r, constant.RequestParamOfferID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	seats, err := pathInt64(r, constant.RequestParamNumSeats)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateSeats(ctx, customerID, offerID, int(seats))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update seats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
