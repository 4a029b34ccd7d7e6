package features

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRequest indicates an inbound payload is not valid JSON or is
	// missing required fields
	ErrInvalidRequest = errors.New("invalid request payload")

	// ErrMalformedResponse indicates the provider's reply is not valid JSON
	// or does not match the feature's response shape
	ErrMalformedResponse = errors.New("malformed provider response")
)

// ParseRequest decodes and validates an inbound request body for a feature.
// Required fields must be present with the right JSON kind; unknown extra
// fields are kept, not rejected.
func ParseRequest(feature Feature, body []byte) (*Request, error) {
	spec, err := Lookup(feature)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidRequest)
	}

	if err := checkShape(payload, spec.Request); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	userID, _ := payload["userId"].(string)
	return &Request{
		Feature: feature,
		UserID:  userID,
		Payload: payload,
		raw:     json.RawMessage(body),
	}, nil
}

// ValidateResponse checks the provider's raw reply against the feature's
// response shape and returns the extracted JSON object untouched. Providers
// sometimes wrap the object in markdown fences or prose; the object is
// located and extracted, but its content is never rewritten, so a successful
// result reaches the caller exactly as the model produced it.
func ValidateResponse(feature Feature, raw string) (json.RawMessage, error) {
	spec, err := Lookup(feature)
	if err != nil {
		return nil, err
	}

	extracted, err := extractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var payload map[string]any
	if err := json.Unmarshal(extracted, &payload); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrMalformedResponse, err)
	}

	if err := checkShape(payload, spec.Response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return extracted, nil
}

// checkShape verifies presence and JSON kind of every required field.
// Optional fields are kind-checked only when present. Extra fields pass.
func checkShape(payload map[string]any, shape Shape) error {
	for _, field := range shape {
		value, present := payload[field.Name]
		if !present || value == nil {
			if field.Optional {
				continue
			}
			return fmt.Errorf("missing required field %q", field.Name)
		}
		if kind := kindOf(value); kind != field.Kind {
			return fmt.Errorf("field %q: expected %s, got %s", field.Name, field.Kind, kind)
		}
	}
	return nil
}

func kindOf(value any) Kind {
	switch value.(type) {
	case string:
		return KindString
	case float64, json.Number:
		return KindNumber
	case bool:
		return KindBool
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return Kind(fmt.Sprintf("%T", value))
	}
}

// extractJSONObject locates the JSON object inside the provider's reply.
// Handles bare JSON, ```json fenced blocks, and objects surrounded by prose.
func extractJSONObject(raw string) ([]byte, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errors.New("empty response")
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if end := strings.LastIndex(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	if !strings.HasPrefix(text, "{") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return nil, errors.New("no JSON object found")
		}
		text = text[start : end+1]
	}

	return []byte(text), nil
}
