package customer

import (
	"net/http"
	"strconv"
	"voyage/infras/otel"
	"voyage/internal/domains/customer/model/dto"
	"voyage/internal/domains/customer/service"
	"voyage/shared/constant"
	"voyage/shared/failure"
	"voyage/shared/validator"
	"voyage/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Put("/user/register", handler.Register)
	router.Post("/user/login", handler.Login)
	router.Put("/user/update/password", handler.UpdatePassword)
	router.Get("/user/role/{customer_id}", handler.GetRole)
}

// Register creates a new customer account.
// @Summary Register a customer
// @Description Register a new customer with a hashed password.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 200 {object} response.Message "Customer registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/register [put]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer registered successfully")

	response.WithMessage(w, http.StatusOK, "Customer registered successfully")
}

// Login authenticates a customer by email or phone number.
// @Summary Log a customer in
// @Description Authenticate with a password and either a positive numeric phone or an email containing "@".
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log customer in")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdatePassword overwrites the password of the customer with the given email.
// @Summary Update a customer password
// @Description Rehash and store a new password for the given email.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Update Password Request"
// @Success 200 {object} response.Message "Password updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/update/password [put]
func (handler *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePassword")
	defer scope.End()

	req := dto.UpdatePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password updated successfully")

	response.WithMessage(w, http.StatusOK, "Password updated successfully")
}

// GetRole retrieves the role rows of a customer.
// @Summary Get a customer role
// @Description Retrieve the role of a customer; an unknown identifier yields an empty array.
// @Tags Customer
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Success 200 {array} dto.RoleResponse "Role rows"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /user/role/{customer_id} [get]
func (handler *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRole")
	defer scope.End()

	customerID, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamCustomerID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid customer id")

		response.WithError(w, failure.BadRequestFromString("customer id must be numeric"))

		return
	}

	roles, err := handler.service.GetRoles(ctx, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer role")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roles)
}
