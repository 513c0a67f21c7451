package sdi

import (
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"
)

// Codec serializes documents of type D to and from file contents.
type Codec[D any] interface {
	Encode(doc *D) ([]byte, error)
	Decode(data []byte) (*D, error)
}

// JSONCodec returns the default document codec: indented JSON on write,
// JWCC (JSON with comments and trailing commas) on read, so hand-edited
// document files still open.
func JSONCodec[D any]() Codec[D] {
	return jsonCodec[D]{}
}

type jsonCodec[D any] struct{}

func (jsonCodec[D]) Encode(doc *D) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return append(data, '\n'), nil
}

func (jsonCodec[D]) Decode(data []byte) (*D, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	doc := new(D)

	unmarshalErr := json.Unmarshal(standardized, doc)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return doc, nil
}
