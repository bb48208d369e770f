package kachelmann

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type Kind int

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindScalar:
		return "scalar"
	default:
		return "null"
	}
}

// Payload is a decoded JSON response whose shape is owned by the remote API.
// Numbers are kept as json.Number so they re-encode exactly as received.
type Payload struct {
	value any
}

func NewPayload(value any) *Payload {
	return &Payload{value: value}
}

func ParsePayload(data []byte) (*Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level JSON value")
	}
	return &Payload{value: value}, nil
}

func (p *Payload) Kind() Kind {
	if p == nil {
		return KindNull
	}
	switch p.value.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindScalar
	}
}

func (p *Payload) Value() any {
	if p == nil {
		return nil
	}
	return p.value
}

func (p *Payload) Object() (map[string]any, bool) {
	obj, ok := p.Value().(map[string]any)
	return obj, ok
}

func (p *Payload) Array() ([]any, bool) {
	arr, ok := p.Value().([]any)
	return arr, ok
}

// Decode re-encodes the payload into a typed record.
func (p *Payload) Decode(into any) error {
	data, err := p.MarshalJSON()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

func (p *Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value())
}

func (p *Payload) String() string {
	data, err := p.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", p.Value())
	}
	return string(data)
}
