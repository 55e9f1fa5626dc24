package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"12abc", 12, true},
		{"  7", 7, true},
		{"-3", -3, true},
		{"+4", 4, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"99999999999999999999", 0, false},
		{"0x1", 1, true},
		{"0X1f", 31, true},
		{"-0xA", -10, true},
		{"0x", 0, false},
		{"0xg", 0, false},
		{"007", 7, true},
	}

	for _, tc := range cases {
		got, ok := parseLeadingInt(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestPackageRef(t *testing.T) {
	cases := []struct {
		raw  string
		id   int64
		text string
		ok   bool
	}{
		{"1", 1, "1", true},
		{" 999 ", 999, "999", true},
		{"1.0", 1, "1", true},
		{"1e3", 1000, "1000", true},
		{"1.5", 0, "1.5", false},
		{"", 0, "undefined", false},
		{"null", 0, "null", false},
		{"true", 0, "true", false},
		{`"999"`, 0, "999", false},
		{`{"a":1}`, 0, "[object Object]", false},
		{`[1,"b",null]`, 0, "1,b,", false},
	}

	for _, tc := range cases {
		id, text, ok := packageRef(json.RawMessage(tc.raw))
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.id, id, tc.raw)
		assert.Equal(t, tc.text, text, tc.raw)
	}
}

func TestSeatCount(t *testing.T) {
	n, err := seatCount("seats", json.RawMessage("3"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = seatCount("seats", nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = seatCount("seats", json.RawMessage("null"))
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = seatCount("seats", json.RawMessage(`"3"`))
	assert.EqualError(t, err, "seats must be an integer")
}
