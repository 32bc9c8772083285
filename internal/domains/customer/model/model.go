package model

const (
	TableName  = "customer"
	EntityName = "customer"

	FieldCustomerID  = "customer_id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldPassword    = "password"
	FieldRole        = "role"
)

type Customer struct {
	ID          int64  `db:"customer_id"  insert:"skip"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	PhoneNumber string `db:"phone_number"`
	Password    string `db:"password"`
	Role        string `db:"role"`
}
