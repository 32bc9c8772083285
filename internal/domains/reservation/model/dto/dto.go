package dto

import (
	"voyage/internal/domains/reservation/model"
)

type ConfirmedResponse struct {
	Confirmed bool `json:"confirmed"`
}

type CancelledResponse struct {
	Cancelled bool `json:"cancelled"`
}

type ReservedTripResponse struct {
	OfferID        int64   `json:"offer_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Discount       float64 `json:"discount"`
	RemainingSlots int     `json:"remaining_slots"`
	Description    string  `json:"description"`
	CustomerID     int64   `json:"customer_id"`
}

func (r *ReservedTripResponse) FromModel(mod model.ReservedTrip) {
	r.OfferID = mod.OfferID
	r.Name = mod.Name
	r.Price = mod.Price
	r.Discount = mod.Discount
	r.RemainingSlots = mod.RemainingSlots
	r.Description = mod.Description
	r.CustomerID = mod.CustomerID
}

// ReservedTripsResponse serializes as a bare JSON array.
type ReservedTripsResponse []ReservedTripResponse

func (r *ReservedTripsResponse) FromModels(models []model.ReservedTrip) {
	*r = make(ReservedTripsResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}
