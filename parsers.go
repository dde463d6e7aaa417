package mikroconf

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Stateless parser constructors for common option types. Each call
// returns a fresh capability; none share state.

// IntParser parses base-10 integers into int64.
func IntParser() Parser {
	return ParseFunc(func(raw string) (any, error) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// FloatParser parses decimal numbers into float64.
func FloatParser() Parser {
	return ParseFunc(func(raw string) (any, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// BoolParser parses the strconv.ParseBool forms ("true", "1", ...).
func BoolParser() Parser {
	return ParseFunc(func(raw string) (any, error) {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// DurationParser parses Go duration strings ("250ms", "1h30m").
func DurationParser() Parser {
	return ParseFunc(func(raw string) (any, error) {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// JSONParser parses a JSON document, preserving number precision as
// json.Number.
func JSONParser() Parser {
	return ParseFunc(func(raw string) (any, error) {
		decoder := json.NewDecoder(strings.NewReader(raw))
		decoder.UseNumber()
		var value any
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	})
}
