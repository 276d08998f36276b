package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/service/pricing"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

type PricingService interface {
	CalculateDeliveryDistance(ctx context.Context, req models.DeliveryRequest) (*models.DistanceResult, error)
	Quote(ctx context.Context, req models.DeliveryRequest) (*models.DeliveryQuote, error)
	SurgeNow(baseFee float64) models.SurgeResult
}

type Delivery struct {
	service PricingService
	l       logger.Logger
}

func NewDelivery(service PricingService, l logger.Logger) *Delivery {
	return &Delivery{
		service: service,
		l:       l,
	}
}

// CalculateDistance godoc
// @Summary      Calculate delivery distance and fee
// @Description  Geocodes both addresses, estimates road distance and travel time and returns the bounded delivery fee
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Param        request body dto.DeliveryRequest true "Pickup and delivery addresses"
// @Success      200 {object} models.DistanceResult
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      404 {object} map[string]any "Address could not be located"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/delivery/distance [post]
func (h *Delivery) CalculateDistance(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "calculate_distance")

	req, ok := h.readDeliveryRequest(ctx, w, r)
	if !ok {
		return
	}

	result, err := h.service.CalculateDeliveryDistance(ctx, req.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to calculate delivery distance", err)
		serviceErrorResponse(w, err)
		return
	}

	response := envelope{
		"distance_km":            result.DistanceKm,
		"estimated_time_minutes": result.EstimatedTimeMinutes,
		"delivery_fee":           result.DeliveryFee,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Quote godoc
// @Summary      Quote a delivery
// @Description  Prices a delivery, classifies its zone and applies the surge of the current time
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Param        request body dto.DeliveryRequest true "Pickup and delivery addresses"
// @Success      200 {object} models.DeliveryQuote
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      404 {object} map[string]any "Address could not be located"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/delivery/quote [post]
func (h *Delivery) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "quote_delivery")

	req, ok := h.readDeliveryRequest(ctx, w, r)
	if !ok {
		return
	}

	quote, err := h.service.Quote(ctx, req.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to quote delivery", err)
		serviceErrorResponse(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"quote": quote}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(wrap.WithQuoteID(ctx, quote.ID), "delivery quoted",
		"delivery_fee", quote.Result.DeliveryFee,
		"surge_fee", quote.Surge.Fee,
		"zone", quote.Zone.Zone)
}

// Zone godoc
// @Summary      Delivery zone
// @Description  Classifies a distance into a delivery zone
// @Tags         delivery
// @Produce      json
// @Param        distance_km query number true "Distance in kilometers"
// @Success      200 {object} models.DeliveryZone
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/delivery/zone [get]
func (h *Delivery) Zone(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delivery_zone")

	distance, ok, err := queryFloat(r, "distance_km")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	v.Check(ok, "distance_km", "must be provided")
	if ok {
		dto.CheckDistance(v, "distance_km", distance)
	}
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"zone": pricing.GetDeliveryZone(distance)}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Surge godoc
// @Summary      Surge pricing
// @Description  Applies the surge multiplier for the given hour and weekday (0 is Sunday). Without both, the current time in the service time zone is used.
// @Tags         delivery
// @Produce      json
// @Param        base_fee query number  true  "Fee before surge"
// @Param        hour     query integer false "Hour of day, 0-23"
// @Param        day      query integer false "Day of week, 0-6"
// @Success      200 {object} models.SurgeResult
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/delivery/surge [get]
func (h *Delivery) Surge(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delivery_surge")

	baseFee, hasFee, err := queryFloat(r, "base_fee")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	hour, hasHour, err := queryInt(r, "hour")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	day, hasDay, err := queryInt(r, "day")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	v.Check(hasFee, "base_fee", "must be provided")
	if hasFee {
		dto.CheckAmount(v, "base_fee", baseFee)
	}
	v.Check(hasHour == hasDay, "hour", "hour and day must be provided together")
	if hasHour {
		v.Check(validator.InRange(hour, 0, 23), "hour", "must be between 0 and 23")
	}
	if hasDay {
		v.Check(validator.InRange(day, 0, 6), "day", "must be between 0 and 6")
	}
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	var surge models.SurgeResult
	if hasHour {
		surge = pricing.ApplySurgePricing(baseFee, hour, time.Weekday(day))
	} else {
		surge = h.service.SurgeNow(baseFee)
	}

	if err := writeJSON(w, http.StatusOK, envelope{"surge": surge}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

func (h *Delivery) readDeliveryRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (dto.DeliveryRequest, bool) {
	var req dto.DeliveryRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return req, false
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return req, false
	}

	return req, true
}
