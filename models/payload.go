package models

import (
	"encoding/json"
	"errors"
)

// ErrRawPayload is returned by [Payload.Decode] when the body was not JSON.
var ErrRawPayload = errors.New("payload is not json")

// Payload is a decoded response body. A body that parses as JSON is kept in
// Data; anything else is kept verbatim in Raw.
type Payload struct {
	Data json.RawMessage
	Raw  string
}

// NewPayload classifies body as JSON or raw text.
func NewPayload(body []byte) Payload {
	if len(body) > 0 && json.Valid(body) {
		return Payload{Data: append(json.RawMessage(nil), body...)}
	}
	return Payload{Raw: string(body)}
}

// IsJSON reports whether the body parsed as JSON.
func (p Payload) IsJSON() bool {
	return len(p.Data) > 0
}

// IsEmpty reports whether the body was empty.
func (p Payload) IsEmpty() bool {
	return len(p.Data) == 0 && p.Raw == ""
}

// Decode unmarshals the JSON body into v.
func (p Payload) Decode(v any) error {
	if !p.IsJSON() {
		return ErrRawPayload
	}
	return json.Unmarshal(p.Data, v)
}

// Success reports whether the body is a JSON object whose "success" field is
// true.
func (p Payload) Success() bool {
	var body struct {
		Success bool `json:"success"`
	}
	if err := p.Decode(&body); err != nil {
		return false
	}
	return body.Success
}

// String returns the body as text.
func (p Payload) String() string {
	if p.IsJSON() {
		return string(p.Data)
	}
	return p.Raw
}
