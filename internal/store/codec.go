package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/bplan/internal/model"
	"github.com/theirongolddev/bplan/internal/pipeline"
)

// ErrInvalidPayload wraps every schema violation found by Decode.
var ErrInvalidPayload = errors.New("invalid budget data")

// Encode serializes a state in the slot/export format, indented two spaces.
func Encode(s model.State) ([]byte, error) {
	data, err := json.MarshalIndent(s.Clone(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding budget: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses and validates serialized budget data.
// income, fixed and variable must all be present and well typed; unknown keys are dropped.
func Decode(data []byte) (model.State, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.State{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if doc == nil {
		return model.State{}, fmt.Errorf("%w: expected a JSON object", ErrInvalidPayload)
	}

	for _, key := range []string{"income", "fixed", "variable"} {
		if _, ok := doc[key]; !ok {
			return model.State{}, fmt.Errorf("%w: missing %q", ErrInvalidPayload, key)
		}
	}

	income, err := decodeAmount(doc["income"], "income")
	if err != nil {
		return model.State{}, err
	}
	fixed, err := decodeEntries(doc["fixed"], "fixed")
	if err != nil {
		return model.State{}, err
	}
	variable, err := decodeEntries(doc["variable"], "variable")
	if err != nil {
		return model.State{}, err
	}

	s := model.State{Income: income, Fixed: fixed, Variable: variable}
	if !pipeline.Summarize(s).Finite() {
		return model.State{}, fmt.Errorf("%w: totals are too large", ErrInvalidPayload)
	}
	return s, nil
}

func decodeAmount(v any, field string) (float64, error) {
	f, ok := v.(float64)
	if !ok || !model.ValidAmount(f) {
		return 0, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidPayload, field)
	}
	return f, nil
}

func decodeEntries(v any, field string) ([]model.Entry, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list", ErrInvalidPayload, field)
	}

	entries := make([]model.Entry, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", field, i)

		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidPayload, path)
		}
		name, ok := obj["name"].(string)
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: %s.name must be a non-empty string", ErrInvalidPayload, path)
		}
		amount, err := decodeAmount(obj["amount"], path+".amount")
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.Entry{Name: strings.TrimSpace(name), Amount: amount})
	}
	return entries, nil
}
