package dto

import (
	"voyage/internal/domains/offer/model"
)

// ShortOfferResponse is a catalogue card. Description carries the short
// variant of the offer text.
type ShortOfferResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Description string  `json:"description"`
}

func (r *ShortOfferResponse) FromModel(mod model.Offer) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Price = mod.Price
	r.Discount = mod.Discount
	r.Description = mod.ShortDescription
}

// ShortOffersResponse serializes as a bare JSON array.
type ShortOffersResponse []ShortOfferResponse

func (r *ShortOffersResponse) FromModels(models []model.Offer) {
	*r = make(ShortOffersResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}

// FullOfferResponse is the detail page payload. Description carries the full
// variant of the offer text.
type FullOfferResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	RemainingSlots int     `json:"remaining_slots"`
	Price          float64 `json:"price"`
	Discount       float64 `json:"discount"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Advantages     string  `json:"advantages"`
}

func (r *FullOfferResponse) FromModel(mod model.Offer) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.RemainingSlots = mod.RemainingSlots
	r.Price = mod.Price
	r.Discount = mod.Discount
	r.Title = mod.Title
	r.Description = mod.FullDescription
	r.Advantages = mod.Advantages
}

// FullOffersResponse serializes as a bare JSON array, empty when the offer
// does not exist.
type FullOffersResponse []FullOfferResponse

func (r *FullOffersResponse) FromModels(models []model.Offer) {
	*r = make(FullOffersResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}
