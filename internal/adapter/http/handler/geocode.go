package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

type GeocodeService interface {
	Resolve(ctx context.Context, address, postalCode string) (models.Resolution, error)
}

type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, p models.GeoPoint) (string, bool)
}

type Geocode struct {
	geocoder GeocodeService
	reverse  ReverseGeocoder
	l        logger.Logger
}

func NewGeocode(geocoder GeocodeService, reverse ReverseGeocoder, l logger.Logger) *Geocode {
	return &Geocode{
		geocoder: geocoder,
		reverse:  reverse,
		l:        l,
	}
}

// Resolve godoc
// @Summary      Geocode an address
// @Description  Resolves an address to a coordinate and reports which tier matched and why earlier tiers failed
// @Tags         geocode
// @Accept       json
// @Produce      json
// @Param        request body dto.GeocodeRequest true "Address and optional postal code"
// @Success      200 {object} models.Resolution
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      404 {object} map[string]any "Address could not be located"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/geocode [post]
func (h *Geocode) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "resolve_address")

	var req dto.GeocodeRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	res, err := h.geocoder.Resolve(ctx, req.Address, req.PostalCode)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to resolve address", err)
		serviceErrorResponse(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"resolution": res}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Reverse godoc
// @Summary      Reverse geocode a coordinate
// @Description  Returns a human readable address from the routing provider
// @Tags         geocode
// @Produce      json
// @Param        lat query number true "Latitude"
// @Param        lon query number true "Longitude"
// @Success      200 {object} dto.ReverseGeocodeResponse
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      404 {object} map[string]any "No address for this coordinate"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/geocode/reverse [get]
func (h *Geocode) Reverse(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "reverse_geocode")

	lat, hasLat, err := queryFloat(r, "lat")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	lon, hasLon, err := queryFloat(r, "lon")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	v.Check(hasLat, "lat", "must be provided")
	v.Check(hasLon, "lon", "must be provided")
	v.Check(validator.InRange(lat, -90, 90), "lat", "must be between -90 and 90")
	v.Check(validator.InRange(lon, -180, 180), "lon", "must be between -180 and 180")
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	address, ok := h.reverse.ReverseGeocode(ctx, models.GeoPoint{Latitude: lat, Longitude: lon})
	if !ok {
		errorResponse(w, http.StatusNotFound, "no address found for this coordinate")
		return
	}

	response := dto.ReverseGeocodeResponse{
		Address:   address,
		Latitude:  lat,
		Longitude: lon,
	}

	if err := writeJSON(w, http.StatusOK, envelope{"result": response}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}
