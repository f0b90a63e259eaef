package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyMPPayload = errors.New("mp_payload cannot be empty")

// InvoicePaymentRequest is the payload for charging an invoice.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. A body without the envelope is treated as the payload itself.
type InvoicePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseInvoicePaymentPayload unwraps the raw body of a settlement request.
// An empty body yields "{}".
func ParseInvoicePaymentPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req InvoicePaymentRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			wrapped := strings.TrimSpace(string(req.MPPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, ErrEmptyMPPayload
			}
			return req.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}
