package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"voyage/internal/domains/customer/model"
	"voyage/shared/constant"
	"voyage/shared/failure"
)

// PhoneNumber accepts a JSON string or number; clients send both.
type PhoneNumber string

func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck
	}

	switch v := raw.(type) {
	case nil:
		*p = ""
	case string:
		*p = PhoneNumber(v)
	case float64:
		*p = PhoneNumber(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return failure.BadRequestFromString("phone must be a string or a number") //nolint:wrapcheck
	}

	return nil
}

// IsNumeric reports whether the phone parses as a positive number, which
// selects the phone credential during login.
func (p PhoneNumber) IsNumeric() bool {
	value, err := strconv.ParseFloat(string(p), 64)

	return err == nil && value > 0
}

type RegisterRequest struct {
	FirstName string      `json:"first_name" validate:"omitempty,max=100"`
	LastName  string      `json:"last_name"  validate:"omitempty,max=100"`
	Email     string      `json:"email"      validate:"omitempty,max=100"`
	Phone     PhoneNumber `json:"phone"      validate:"omitempty,max=20"`
	Password  string      `json:"password"   validate:"omitempty"`
}

func (r *RegisterRequest) ToModel(hashedPassword string) model.Customer {
	return model.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: string(r.Phone),
		Password:    hashedPassword,
		Role:        constant.RoleUser,
	}
}

type LoginRequest struct {
	Email    string      `json:"email"    validate:"omitempty"`
	Phone    PhoneNumber `json:"phone"    validate:"omitempty"`
	Password string      `json:"password" validate:"omitempty"`
}

// Credential resolves which column identifies the customer. A positive
// numeric phone wins over email; an email must contain "@" to count.
func (r *LoginRequest) Credential() (field, value string, err error) {
	if r.Phone.IsNumeric() {
		return model.FieldPhoneNumber, string(r.Phone), nil
	}

	if strings.Contains(r.Email, "@") {
		return model.FieldEmail, r.Email, nil
	}

	return "", "", failure.BadRequestFromString("Email or phone number is required.") //nolint:wrapcheck
}

type LoginUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

func (r *LoginResponse) FromModel(mod model.Customer) {
	r.Message = "Login successful"
	r.User = LoginUser{
		ID:        mod.ID,
		FirstName: mod.FirstName,
		LastName:  mod.LastName,
	}
}

type UpdatePasswordRequest struct {
	Email    string `json:"email"    validate:"omitempty"`
	Password string `json:"password" validate:"omitempty"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

// RolesResponse serializes as a bare JSON array, empty for an unknown
// customer.
type RolesResponse []RoleResponse

func (r *RolesResponse) FromModels(models []model.Customer) {
	*r = make(RolesResponse, len(models))
	for i, mod := range models {
		(*r)[i] = RoleResponse{Role: mod.Role}
	}
}
