package service

import (
	"context"
	"fmt"
	"voyage/config"
	"voyage/infras/otel"
	"voyage/internal/domains/offer/model"
	"voyage/internal/domains/offer/model/dto"
	"voyage/internal/domains/offer/repository"
	"voyage/shared"
	"voyage/shared/cache"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "offers"

type Offer interface {
	GetShort(ctx context.Context) (dto.ShortOffersResponse, error)
	GetFull(ctx context.Context, offerID int64) (dto.FullOffersResponse, error)
}

type serviceImpl struct {
	repo  repository.Offer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Offer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Offer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetShort returns the three catalogue cards shown on the landing page. The
// catalogue is read-only at runtime so cached entries only ever expire.
func (s *serviceImpl) GetShort(ctx context.Context) (res dto.ShortOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetShort")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, "short")
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{Limit: constant.ShortOfferLimit}, gDto.FilterGroup{}, model.ShortColumns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get short offers")

		return res, fmt.Errorf("failed to get short offers: %w", err)
	}

	res.FromModels(models)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache short offers")
	}

	return res, nil
}

// GetFull returns the detail payload for one offer as a single-element list,
// or an empty list when the offer does not exist.
func (s *serviceImpl) GetFull(ctx context.Context, offerID int64) (res dto.FullOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFull")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.FieldOfferID, offerID)

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, "full", offerID)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	filter := shared.FilterBy(model.FieldOfferID, model.TableName, offerID)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Int64("offer_id", offerID).Msg("failed to get full offer")

		return res, fmt.Errorf("failed to get full offer: %w", err)
	}

	res.FromModels(models)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache full offer")
	}

	return res, nil
}
