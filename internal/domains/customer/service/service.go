package service

import (
	"context"
	"errors"
	"fmt"
	"voyage/config"
	"voyage/infras/otel"
	"voyage/internal/domains/customer/model"
	"voyage/internal/domains/customer/model/dto"
	"voyage/internal/domains/customer/repository"
	"voyage/shared"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"
	"voyage/shared/password"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	UpdatePassword(ctx context.Context, req dto.UpdatePasswordRequest) error
	GetRoles(ctx context.Context, customerID int64) (dto.RolesResponse, error)
}

type serviceImpl struct {
	repo repository.Customer
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashed, err := password.Hash(req.Password, s.cfg.App.BcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(hashed)); err != nil {
		log.Error().Err(err).Msg("failed to register customer")

		return fmt.Errorf("failed to register customer: %w", err)
	}

	return nil
}

// Login authenticates by phone number or email per the credential selection
// rule. Unknown identity and wrong password both map to 401.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	field, value, err := req.Credential()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	customer, err := s.repo.Get(ctx, shared.FilterBy(field, model.TableName, value))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		return res, failure.Unauthorized("Incorrect email or phone number") //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, customer.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.Unauthorized("Incorrect password") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to verify password")

		return res, fmt.Errorf("failed to verify password: %w", err)
	}

	res.FromModel(customer)

	return res, nil
}

// UpdatePassword rehashes and overwrites the password for the given email.
// It reports success even when no row matches, which mirrors the observable
// contract of the endpoint.
func (s *serviceImpl) UpdatePassword(ctx context.Context, req dto.UpdatePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashed, err := password.Hash(req.Password, s.cfg.App.BcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	filter := shared.FilterBy(model.FieldEmail, model.TableName, req.Email)

	if err = s.repo.Update(ctx, map[string]any{model.FieldPassword: hashed}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// GetRoles returns the role rows for a customer, empty when unknown.
func (s *serviceImpl) GetRoles(ctx context.Context, customerID int64) (res dto.RolesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoles")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.FieldCustomerID, customerID)

	filter := shared.FilterBy(model.FieldCustomerID, model.TableName, customerID)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter, model.FieldRole)
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get customer role")

		return res, fmt.Errorf("failed to get customer role: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
