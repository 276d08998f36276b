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

type AdminService interface {
	GetPricingSettings(ctx context.Context) models.PricingSettings
	UpdatePricingSettings(ctx context.Context, in models.PricingSettings) error
}

type Admin struct {
	service AdminService
	l       logger.Logger
}

func NewAdmin(service AdminService, l logger.Logger) *Admin {
	return &Admin{
		service: service,
		l:       l,
	}
}

// GetPricing godoc
// @Summary      Effective pricing settings
// @Description  Returns the pricing configuration and default locality with fallbacks applied
// @Tags         admin
// @Produce      json
// @Success      200 {object} models.PricingSettings
// @Failure      401 {object} map[string]any "Unauthorized"
// @Failure      403 {object} map[string]any "Forbidden"
// @Security     BearerAuth
// @Router       /v1/admin/pricing [get]
func (h *Admin) GetPricing(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_pricing_settings")

	settings := h.service.GetPricingSettings(ctx)

	if err := writeJSON(w, http.StatusOK, envelope{"settings": settings}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}

// UpdatePricing godoc
// @Summary      Update pricing settings
// @Description  Validates and stores the fee settings and default locality in one transaction
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body dto.PricingSettingsRequest true "Pricing settings"
// @Success      200 {object} models.PricingSettings
// @Failure      400 {object} map[string]any "Bad request"
// @Failure      401 {object} map[string]any "Unauthorized"
// @Failure      403 {object} map[string]any "Forbidden"
// @Failure      422 {object} map[string]any "Validation error"
// @Security     BearerAuth
// @Router       /v1/admin/pricing [put]
func (h *Admin) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_pricing_settings")

	var req dto.PricingSettingsRequest
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

	settings := req.ToModel()
	if err := h.service.UpdatePricingSettings(ctx, settings); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to update pricing settings", err)
		serviceErrorResponse(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"settings": settings}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	if user := models.UserFromContext(ctx); user != nil {
		h.l.Info(wrap.WithUserID(ctx, user.ID), "pricing settings updated by admin")
	}
}
