package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string ("7", "7.0", " 7 ").
// Anything else decodes to zero so validation can report the field instead
// of failing the whole body as malformed JSON.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*f = FlexInt(truncate(v))
	case string:
		*f = FlexInt(parseLeadingInt(v))
	default:
		*f = 0
	}
	return nil
}

func (f FlexInt) Int64() int64 { return int64(f) }

func truncate(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v > math.MaxInt64 || v < math.MinInt64 {
		return 0
	}
	return int64(v)
}

// parseLeadingInt reads an optional sign and the leading decimal digits.
func parseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
