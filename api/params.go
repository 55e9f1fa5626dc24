package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into obj. An empty body leaves obj at its zero value.
func bindJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// packageRef resolves a raw packageId field. Only integral numbers can name a
// package; anything else reports ok=false along with the text clients see in
// "Invalid packageId: ...". An absent field renders as "undefined".
func packageRef(raw json.RawMessage) (id int64, text string, ok bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, "undefined", false
	}

	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return 0, string(raw), false
		}
		if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			id = int64(f)
			return id, strconv.FormatInt(id, 10), true
		}
		return 0, strconv.FormatFloat(f, 'f', -1, 64), false
	}

	return 0, jsonText(raw), false
}

// jsonText renders a non-numeric JSON value the way string interpolation would.
func jsonText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case '{':
		return "[object Object]"
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			parts := make([]string, len(items))
			for i, item := range items {
				if string(bytes.TrimSpace(item)) != "null" {
					parts[i] = jsonText(item)
				}
			}
			return strings.Join(parts, ",")
		}
	}
	return string(raw)
}

// seatCount decodes an optional integer seat field. Absent and null count as zero.
func seatCount(field string, raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return n, nil
}

// parseLeadingInt reads an optionally signed integer at the start of s, after
// leading whitespace. A 0x prefix switches to hex. "12abc" yields 12, "0x1f"
// yields 31, "abc" yields false.
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func isDigit(ch byte, base int) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case base == 16 && ch >= 'a' && ch <= 'f':
		return true
	case base == 16 && ch >= 'A' && ch <= 'F':
		return true
	}
	return false
}
