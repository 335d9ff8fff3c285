package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberError reports a value that cannot be read as a number.
type NumberError struct {
	Raw string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s is not a number", e.Raw)
}

// Number accepts a JSON number or a numeric string ("12.5") and normalizes it
// to float64. Anything else, including NaN and infinities, fails to decode.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return n.parse(strings.TrimSpace(s))
	}
	return n.parse(string(b))
}

func (n *Number) parse(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return &NumberError{Raw: strconv.Quote(s)}
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

// IsInt reports whether the number has no fractional part.
func (n Number) IsInt() bool {
	return float64(n) == math.Trunc(float64(n))
}

// Num is a convenience for building optional numeric inputs in code.
func Num(f float64) *Number {
	n := Number(f)
	return &n
}
