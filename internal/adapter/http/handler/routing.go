package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/service/routing"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

type RoutingService interface {
	Route(ctx context.Context, origin, destination models.GeoPoint) models.RouteData
	CalculateDistanceMatrix(ctx context.Context, points []models.GeoPoint) models.DistanceMatrix
	FindNearestDeliverer(ctx context.Context, pickup models.GeoPoint, candidates []models.Deliverer) *models.NearestDeliverer
}

type Routing struct {
	service RoutingService
	l       logger.Logger
}

func NewRouting(service RoutingService, l logger.Logger) *Routing {
	return &Routing{
		service: service,
		l:       l,
	}
}

// Route godoc
// @Summary      Route and price a delivery
// @Description  Returns the driving route between two points and a linear price over its distance. Falls back to a straight line estimate when the provider is unavailable.
// @Tags         routing
// @Accept       json
// @Produce      json
// @Param        request body dto.RouteRequest true "Origin, destination and optional fares"
// @Success      200 {object} dto.RouteResponse
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/routes [post]
func (h *Routing) Route(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "route_delivery")

	var req dto.RouteRequest
	if !h.read(ctx, w, r, &req, req.Validate) {
		return
	}

	baseFare, perKm := routing.DefaultBaseFare, routing.DefaultPerKm
	if req.BaseFare != nil {
		baseFare = *req.BaseFare
	}
	if req.PerKm != nil {
		perKm = *req.PerKm
	}

	route := h.service.Route(ctx, req.Origin.ToModel(), req.Destination.ToModel())
	response := dto.RouteResponse{
		Route: route,
		Price: routing.CalculateDeliveryPrice(route.DistanceMeters, baseFare, perKm),
	}

	if err := writeJSON(w, http.StatusOK, envelope{"result": response}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Matrix godoc
// @Summary      Distance matrix
// @Description  Pairwise distances in meters between the given points
// @Tags         routing
// @Accept       json
// @Produce      json
// @Param        request body dto.MatrixRequest true "Points"
// @Success      200 {object} models.DistanceMatrix
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/routes/matrix [post]
func (h *Routing) Matrix(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "distance_matrix")

	var req dto.MatrixRequest
	if !h.read(ctx, w, r, &req, req.Validate) {
		return
	}

	matrix := h.service.CalculateDistanceMatrix(ctx, req.ToModel())

	if err := writeJSON(w, http.StatusOK, envelope{"matrix": matrix}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// Nearest godoc
// @Summary      Nearest deliverer
// @Description  Picks the candidate closest to the pickup point. The result is null when there are no candidates.
// @Tags         routing
// @Accept       json
// @Produce      json
// @Param        request body dto.NearestRequest true "Pickup and candidates"
// @Success      200 {object} models.NearestDeliverer
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      422 {object} map[string]any "Validation error"
// @Router       /v1/deliverers/nearest [post]
func (h *Routing) Nearest(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "nearest_deliverer")

	var req dto.NearestRequest
	if !h.read(ctx, w, r, &req, req.Validate) {
		return
	}

	pickup, candidates := req.ToModel()
	nearest := h.service.FindNearestDeliverer(ctx, pickup, candidates)

	if err := writeJSON(w, http.StatusOK, envelope{"nearest": nearest}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

func (h *Routing) read(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any, validate func(*validator.Validator)) bool {
	if err := readJSON(w, r, dst); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return false
	}

	v := validator.New()
	validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return false
	}
	return true
}
