package dto

import (
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

const (
	TypeQuoteRequest = "quote_request"
	TypeQuote        = "quote"
	TypeError        = "error"
)

// Websocket message: Client → Quote Request
type QuoteRequest struct {
	MsgType   string `json:"type"` // must be: `quote_request`
	RequestID string `json:"request_id,omitempty"`
	dto.DeliveryRequest
}

func (r *QuoteRequest) Validate(v *validator.Validator) {
	v.Check(r.MsgType == TypeQuoteRequest, "type", "must be: quote_request type")
	v.Check(len(r.RequestID) <= 64, "request_id", "must not be more than 64 characters long")
	r.DeliveryRequest.Validate(v)
}

// Websocket message: Server → Quote
type QuoteResponse struct {
	MsgType   string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
	Quote     any    `json:"quote,omitempty"`
	Error     any    `json:"error,omitempty"`
}
