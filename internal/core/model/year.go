package model

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Year is a release year kept as opaque text. Source data carries
// non-numeric values, so it is only ever used for key formatting.
type Year string

func (y Year) String() string {
	return string(y)
}

// MarshalJSON writes numeric years as JSON numbers and anything else as a string.
func (y Year) MarshalJSON() ([]byte, error) {
	if y.numeric() {
		return []byte(y), nil
	}
	return json.Marshal(string(y))
}

func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*y = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	// Float-encoded integers (2011.0) collapse to their integer form.
	if f == float64(int64(f)) {
		*y = Year(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*y = Year(data)
	return nil
}

func (y Year) numeric() bool {
	if y == "" {
		return false
	}
	for _, c := range y {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(y) == 1 || y[0] != '0'
}
