package leetcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexString decodes a JSON string or number into its string form.
// LeetCode returns ids as strings from GraphQL and as numbers from REST.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// unixSeconds decodes a unix timestamp sent either as a number or a numeric string.
type unixSeconds int64

func (u *unixSeconds) UnmarshalJSON(data []byte) error {
	var raw flexString
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}
	if raw == "" {
		*u = 0
		return nil
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(raw), 64)
		if ferr != nil {
			return fmt.Errorf("decode timestamp %q: %w", string(raw), err)
		}
		n = int64(f)
	}
	*u = unixSeconds(n)
	return nil
}
