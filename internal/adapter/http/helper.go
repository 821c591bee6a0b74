package http

import (
	"bytes"
	"encoding/json"
	"strings"
)

// flexText accepts a JSON string or a JSON number and keeps the raw text,
// so API clients may send {"amount": 1000} or {"amount": "1000"}.
type flexText string

func (f *flexText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexText(n.String())
	return nil
}

func (f flexText) String() string { return strings.TrimSpace(string(f)) }
