package model

import (
	"time"
)

const (
	TableName  = "reservation"
	EntityName = "reservation"

	OfferTableName       = "trip_offer"
	DescriptionTableName = "trip_description"
	TripEntityName       = "reserved_trip"

	FieldReservationID = "reservation_id"
	FieldCustomerID    = "customer_id"
	FieldOfferID       = "offer_id"
	FieldDate          = "date"
	FieldSeats         = "seats"
	FieldStatus        = "status"
)

type Reservation struct {
	ID         int64     `db:"reservation_id" insert:"skip"`
	CustomerID int64     `db:"customer_id"`
	OfferID    int64     `db:"offer_id"`
	Date       time.Time `db:"date"`
	Seats      int       `db:"seats"`
	Status     string    `db:"status"`
}

// ReservedTrip is an offer row joined to one of the customer's reservations.
// It reads from trip_offer; the reservation table only contributes the filter
// and the customer column.
type ReservedTrip struct {
	OfferID        int64   `db:"offer_id"`
	Name           string  `db:"name"`
	Price          float64 `db:"price"`
	Discount       float64 `db:"discount"`
	RemainingSlots int     `db:"remaining_slots"`
	Description    string  `column:"short_description" db:"description" table:"trip_description"`
	CustomerID     int64   `db:"customer_id"       table:"reservation"`
}

func (ReservedTrip) GetJoinQuery() string {
	return "JOIN reservation ON trip_offer.offer_id = reservation.offer_id " +
		"JOIN trip_description ON trip_offer.offer_id = trip_description.offer_id"
}
