package mikroconf

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
)

// Stateless validator constructors mirroring the parser factories.

// Range accepts numeric values within [min, max] inclusive.
func Range(min, max float64) Validator {
	return ValidateFunc(func(value any) error {
		f, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("expected a number, got %T", value)
		}
		if f < min || f > max {
			return fmt.Errorf("must be between %v and %v", min, max)
		}
		return nil
	})
}

// NonEmpty rejects empty strings with the bare ErrInvalidValue.
func NonEmpty() Validator {
	return ValidateFunc(func(value any) error {
		s, ok := value.(string)
		if !ok || s == "" {
			return ErrInvalidValue
		}
		return nil
	})
}

// MinLength accepts strings of at least n characters.
func MinLength(n int) Validator {
	return ValidateFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected a string, got %T", value)
		}
		if len(s) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	})
}

// MaxLength accepts strings of at most n characters.
func MaxLength(n int) Validator {
	return ValidateFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected a string, got %T", value)
		}
		if len(s) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	})
}

// OneOf accepts values whose string form equals one of the choices.
func OneOf(choices ...string) Validator {
	return ValidateFunc(func(value any) error {
		s := fmt.Sprintf("%v", value)
		for _, choice := range choices {
			if s == choice {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %v", choices)
	})
}

// Matches accepts strings matching the given pattern.
func Matches(re *regexp.Regexp) Validator {
	return ValidateFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected a string, got %T", value)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match %s", re)
		}
		return nil
	})
}

// toFloat widens any numeric value to float64. String-kinded values
// (including json.Number) go through ParseFloat.
func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.String:
		if f, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return f, true
		}
	}

	return 0, false
}
