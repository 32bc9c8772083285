package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyage/internal/domains/customer/model"
	"voyage/internal/domains/customer/model/dto"
)

func TestPhoneNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    dto.PhoneNumber
		wantErr bool
	}{
		{
			name:    "string phone",
			payload: `{"phone":"48123456789"}`,
			want:    "48123456789",
		},
		{
			name:    "numeric phone",
			payload: `{"phone":48123456789}`,
			want:    "48123456789",
		},
		{
			name:    "null phone",
			payload: `{"phone":null}`,
			want:    "",
		},
		{
			name:    "missing phone",
			payload: `{}`,
			want:    "",
		},
		{
			name:    "object phone",
			payload: `{"phone":{"nested":true}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.LoginRequest

			err := json.Unmarshal([]byte(tt.payload), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, req.Phone)
			}
		})
	}
}

func TestLoginRequest_Credential(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		wantField string
		wantValue string
		wantErr   bool
	}{
		{
			name:      "numeric phone selects phone column",
			req:       dto.LoginRequest{Phone: "48123456789", Email: "anna@example.com"},
			wantField: model.FieldPhoneNumber,
			wantValue: "48123456789",
		},
		{
			name:      "email with at sign selects email column",
			req:       dto.LoginRequest{Email: "anna@example.com"},
			wantField: model.FieldEmail,
			wantValue: "anna@example.com",
		},
		{
			name:      "non numeric phone falls back to email",
			req:       dto.LoginRequest{Phone: "abc", Email: "anna@example.com"},
			wantField: model.FieldEmail,
			wantValue: "anna@example.com",
		},
		{
			name:    "zero phone and plain email rejected",
			req:     dto.LoginRequest{Phone: "0", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "empty request rejected",
			req:     dto.LoginRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, value, err := tt.req.Credential()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantField, field)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestRegisterRequest_ToModel(t *testing.T) {
	req := dto.RegisterRequest{
		FirstName: "Anna",
		LastName:  "Kowalska",
		Email:     "anna@example.com",
		Phone:     "48123456789",
		Password:  "ignored",
	}

	mod := req.ToModel("hashed-value")

	assert.Equal(t, "Anna", mod.FirstName)
	assert.Equal(t, "Kowalska", mod.LastName)
	assert.Equal(t, "anna@example.com", mod.Email)
	assert.Equal(t, "48123456789", mod.PhoneNumber)
	assert.Equal(t, "hashed-value", mod.Password)
	assert.Equal(t, "user", mod.Role)
}
