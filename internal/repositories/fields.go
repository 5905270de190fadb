package repositories

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fields is a decoded request body. Updates apply only the keys present,
// so the raw key set has to survive decoding; a typed struct would lose
// the present-but-zero / absent distinction.
type Fields map[string]any

// DecodeFields reads a JSON object body. Numbers are kept as json.Number
// so amounts can be converted to decimals without a float round trip.
func DecodeFields(body io.Reader) (Fields, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var f Fields
	if err := decoder.Decode(&f); err != nil {
		return nil, &ValidationError{Message: "Invalid request body"}
	}
	return f, nil
}

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Missing returns the required keys absent from the field set, in the
// order given.
func (f Fields) Missing(required ...string) []string {
	missing := []string{}
	for _, key := range required {
		if !f.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// RequireAll fails with the comma-joined missing-fields message when any
// required key is absent.
func (f Fields) RequireAll(required ...string) error {
	missing := f.Missing(required...)
	if len(missing) > 0 {
		return validationf("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// String returns the value under key as a string, or "" when the key is
// absent, null, or not a string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Int returns the value under key as an int. ok is false when the value
// is not an integral number.
func (f Fields) Int(key string) (int, bool) {
	switch v := f[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := json.Number(v).Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// Decimal returns the value under key as a decimal, accepting JSON
// numbers and numeric strings.
func (f Fields) Decimal(key string) (decimal.Decimal, bool) {
	switch v := f[key].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}

// Date parses the value under key as an ISO-8601 calendar date. A
// malformed value is a validation failure distinct from a missing field.
func (f Fields) Date(key string) (time.Time, error) {
	s, ok := f[key].(string)
	if !ok {
		return time.Time{}, &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
	}
	return t, nil
}
