package wshandler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/ws/dto"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
	ws "github.com/Temutjin2k/delivery-pricing/pkg/wsHub"
)

const (
	serviceName = "pricing-service"

	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 64 << 10
	quoteTimeout   = 30 * time.Second
)

type QuoteService interface {
	Quote(ctx context.Context, req models.DeliveryRequest) (*models.DeliveryQuote, error)
}

// QuoteStream serves live quotes: every quote_request message is answered with a quote or an error.
type QuoteStream struct {
	connections *ws.ConnectionHub
	service     QuoteService
	upgrader    websocket.Upgrader
	l           logger.Logger
}

func NewQuoteStream(connections *ws.ConnectionHub, service QuoteService, l logger.Logger) *QuoteStream {
	return &QuoteStream{
		connections: connections,
		service:     service,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		l: l,
	}
}

// HandleWS godoc
// @Summary      Live quotes
// @Description  Websocket stream. Send {"type":"quote_request","request_id":"...","pickup_address":"...","delivery_address":"..."} and receive {"type":"quote",...} or {"type":"error",...}.
// @Tags         delivery
// @Success      101 "Switching Protocols"
// @Router       /ws/quotes [get]
func (h *QuoteStream) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionWSQuoteStream)

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		h.l.Warn(ctx, "failed to upgrade connection", "error", err.Error())
		return
	}

	raw.SetReadLimit(maxMessageSize)
	_ = raw.SetReadDeadline(time.Now().Add(pongWait))
	raw.SetPongHandler(func(string) error {
		return raw.SetReadDeadline(time.Now().Add(pongWait))
	})

	conn := ws.NewConn(ctx, uuid.NewString(), raw)
	if err := h.connections.Add(conn); err != nil {
		h.l.Error(ctx, "failed to register connection", err)
		_ = conn.Close()
		return
	}
	defer func() {
		if err := h.connections.Delete(conn.ID()); err != nil && !errors.Is(err, ws.ErrConnIsNotFound) {
			h.l.Warn(ctx, "failed to remove connection", "conn_id", conn.ID(), "error", err.Error())
		}
	}()

	metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Inc()
	defer metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Dec()

	h.l.Debug(ctx, "websocket connected", "conn_id", conn.ID())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.keepAlive(gctx, conn)
	})
	g.Go(func() error {
		return conn.Listen(func(data []byte) error {
			_ = raw.SetReadDeadline(time.Now().Add(pongWait))

			var req dto.QuoteRequest
			if errs := decodeFrame(data, &req); errs != nil {
				h.l.Warn(ctx, "malformed websocket frame", "conn_id", conn.ID())
				return failedValidationResponse(conn, "", errs)
			}
			return h.handleQuoteRequest(gctx, conn, &req)
		})
	})

	err = g.Wait()
	var closeErr *websocket.CloseError
	switch {
	case errors.As(err, &closeErr) && (closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway):
		h.l.Debug(ctx, "websocket closed by client", "conn_id", conn.ID())
	case errors.Is(err, ws.ErrConnClosed):
		h.l.Debug(ctx, "websocket closed by server", "conn_id", conn.ID())
	default:
		h.l.Warn(ctx, "websocket connection ended", "conn_id", conn.ID(), "error", err.Error())
	}
}

// keepAlive pings the client until ctx is done or the connection is closed.
// It closes the connection on exit so a blocked reader returns.
func (h *QuoteStream) keepAlive(ctx context.Context, conn *ws.Conn) error {
	defer conn.Close()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-conn.Done():
			return nil
		case <-ticker.C:
			if err := conn.Ping(); err != nil {
				return err
			}
		}
	}
}

func (h *QuoteStream) handleQuoteRequest(ctx context.Context, conn *ws.Conn, req *dto.QuoteRequest) error {
	if req.RequestID != "" {
		ctx = wrap.WithRequestID(ctx, req.RequestID)
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid quote request", "conn_id", conn.ID())
		return failedValidationResponse(conn, req.RequestID, v.Errors)
	}

	ctx, cancel := context.WithTimeout(ctx, quoteTimeout)
	defer cancel()

	quote, err := h.service.Quote(ctx, req.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to quote delivery", err)
		if errors.Is(err, types.ErrNotFound) {
			return errorResponse(conn, req.RequestID, "could not determine a price for this address")
		}
		return errorResponse(conn, req.RequestID, "failed to quote delivery")
	}

	return conn.Send(dto.QuoteResponse{
		MsgType:   dto.TypeQuote,
		RequestID: req.RequestID,
		Quote:     quote,
	})
}
