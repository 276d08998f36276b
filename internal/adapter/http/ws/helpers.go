package wshandler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/ws/dto"
	ws "github.com/Temutjin2k/delivery-pricing/pkg/wsHub"
)

func errorResponse(conn *ws.Conn, requestID string, message any) error {
	return conn.Send(dto.QuoteResponse{
		MsgType:   dto.TypeError,
		RequestID: requestID,
		Error:     message,
	})
}

func failedValidationResponse(conn *ws.Conn, requestID string, errors map[string]string) error {
	return errorResponse(conn, requestID, errors)
}

// decodeFrame unmarshals a client frame into dst. A malformed frame is
// reported as a field map, keyed by the offending field when it is known.
func decodeFrame(data []byte, dst any) map[string]string {
	err := json.Unmarshal(data, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: fmt.Sprintf("must be a %s", typeErr.Type)}
	}
	return map[string]string{"frame": "must be a JSON object"}
}
