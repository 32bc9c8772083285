package model

const (
	TableName            = "trip_offer"
	DescriptionTableName = "trip_description"
	EntityName           = "offer"

	FieldOfferID = "offer_id"
)

// ShortColumns is the projection served by the catalogue card listing.
var ShortColumns = []string{"id", "name", "price", "discount", "short_description"}

// Offer spans trip_offer and its one-to-one trip_description row.
type Offer struct {
	ID               int64   `column:"offer_id"          db:"id"`
	Name             string  `db:"name"`
	Price            float64 `db:"price"`
	Discount         float64 `db:"discount"`
	RemainingSlots   int     `db:"remaining_slots"`
	Title            string  `db:"title"             table:"trip_description"`
	ShortDescription string  `db:"short_description" table:"trip_description"`
	FullDescription  string  `db:"full_description"  table:"trip_description"`
	Advantages       string  `db:"advantages"        table:"trip_description"`
}

func (Offer) GetJoinQuery() string {
	return "JOIN trip_description ON trip_offer.offer_id = trip_description.offer_id"
}
