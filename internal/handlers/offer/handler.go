package offer

import (
	"net/http"
	"strconv"
	"voyage/infras/otel"
	"voyage/internal/domains/offer/service"
	"voyage/shared/constant"
	"voyage/shared/failure"
	"voyage/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offers", func(routerGroup chi.Router) {
		routerGroup.Get("/short/get", handler.GetShortOffers)
		routerGroup.Get("/full/get/{id}", handler.GetFullOffer)
	})
}

// GetShortOffers lists the catalogue cards for the landing page.
// @Summary Get short offers
// @Description Retrieve the bounded list of offer summaries shown on the landing page.
// @Tags Offer
// @Produce json
// @Success 200 {array} dto.ShortOfferResponse "Offer summaries"
// @Failure 500 {object} response.Error
// @Router /offers/short/get [get]
func (handler *Handler) GetShortOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShortOffers")
	defer scope.End()

	offers, err := handler.service.GetShort(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get short offers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, offers)
}

// GetFullOffer retrieves the detail payload of one offer.
// @Summary Get full offer
// @Description Retrieve the full detail of one offer; an unknown identifier yields an empty array.
// @Tags Offer
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {array} dto.FullOfferResponse "Offer detail"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /offers/full/get/{id} [get]
func (handler *Handler) GetFullOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFullOffer")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid offer id")

		response.WithError(w, failure.BadRequestFromString("offer id must be numeric"))

		return
	}

	offers, err := handler.service.GetFull(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get full offer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, offers)
}
