package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string. HTML forms post
// select values as strings.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	raw, err := unquoteNumber(data)
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = FlexInt(v)
	return nil
}

// FlexFloat is the float64 counterpart of FlexInt.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw, err := unquoteNumber(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", data)
	}
	*f = FlexFloat(v)
	return nil
}

func unquoteNumber(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
