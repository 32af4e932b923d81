package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is a monetary value. Decimal fields may arrive as JSON numbers or as
// quoted strings such as "120.50"; they are always written as numbers.
type Amount float64

// Float returns the amount as float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// String formats the amount with two decimals.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*a = 0
			return nil
		}
		data = []byte(s)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("amount %q: %w", data, err)
	}
	*a = Amount(f)
	return nil
}
