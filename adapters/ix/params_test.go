package ix

import (
	"encoding/json"
	"testing"

	"github.com/mxmCherry/openrtb"
	"github.com/stretchr/testify/assert"

	"github.com/prebid/ix-adapter/pbs"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		w, h  uint64
	}{
		{`[300,250]`, true, 300, 250},
		{`[728,90]`, true, 728, 90},
		{`[300]`, false, 0, 0},
		{`[300,250,30]`, false, 0, 0},
		{`[300.5,250]`, false, 0, 0},
		{`["300","250"]`, false, 0, 0},
		{`"300x250"`, false, 0, 0},
		{`{}`, false, 0, 0},
		{`null`, false, 0, 0},
		{``, false, 0, 0},
	}

	for _, test := range tests {
		size, ok := parseSize(json.RawMessage(test.raw))
		if assert.Equal(t, test.valid, ok, "parseSize(%s)", test.raw) && ok {
			assert.Equal(t, openrtb.Format{W: test.w, H: test.h}, size)
		}
	}
}

func TestIncludesSize(t *testing.T) {
	size := openrtb.Format{W: 300, H: 250}

	tests := []struct {
		declared string
		expected bool
	}{
		{`[[300,250],[728,90]]`, true},
		{`[[728,90],[300,250]]`, true},
		{`[300,250]`, true},
		{`[[300,250]]`, true},
		{`[[728,90]]`, false},
		{`[728,90]`, false},
		{`[[300,600]]`, false},
		{`[300,600]`, false},
		{`[]`, false},
		{`"300x250"`, false},
		{`null`, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, includesSize(json.RawMessage(test.declared), size),
			"includesSize(%s, [300,250])", test.declared)
	}
}

func TestIncludesSizeOtherTarget(t *testing.T) {
	declared := json.RawMessage(`[[300,250]]`)
	assert.False(t, includesSize(declared, openrtb.Format{W: 728, H: 90}))
}

func TestIsValidBidFloorParams(t *testing.T) {
	floor := 1.5
	usd := "USD"
	lower := "usd"
	long := "USDD"

	assert.True(t, isValidBidFloorParams(&floor, &usd))
	assert.False(t, isValidBidFloorParams(nil, &usd))
	assert.False(t, isValidBidFloorParams(&floor, nil))
	assert.False(t, isValidBidFloorParams(&floor, &lower))
	assert.False(t, isValidBidFloorParams(&floor, &long))
	assert.False(t, isValidBidFloorParams(nil, nil))
}

func TestIsBidRequestValid(t *testing.T) {
	adapter := &IxAdapter{}

	tests := []struct {
		description string
		sizes       string
		params      string
		expected    bool
	}{
		{
			description: "well-formed banner request",
			sizes:       `[[300,250],[728,90]]`,
			params:      `{"siteId":"123","size":[300,250]}`,
			expected:    true,
		},
		{
			description: "declared sizes given as a single pair",
			sizes:       `[300,250]`,
			params:      `{"siteId":"123","size":[300,250]}`,
			expected:    true,
		},
		{
			description: "chosen size not declared by the slot",
			sizes:       `[[728,90]]`,
			params:      `{"siteId":"123","size":[300,250]}`,
			expected:    false,
		},
		{
			description: "malformed chosen size",
			sizes:       `[[300,250]]`,
			params:      `{"siteId":"123","size":[300]}`,
			expected:    false,
		},
		{
			description: "missing siteId",
			sizes:       `[[300,250]]`,
			params:      `{"size":[300,250]}`,
			expected:    false,
		},
		{
			description: "siteId is not a string",
			sizes:       `[[300,250]]`,
			params:      `{"siteId":123,"size":[300,250]}`,
			expected:    false,
		},
		{
			description: "empty siteId is still a string",
			sizes:       `[[300,250]]`,
			params:      `{"siteId":"","size":[300,250]}`,
			expected:    true,
		},
		{
			description: "bidFloor without bidFloorCur",
			sizes:       `[[300,250]]`,
			params:      `{"siteId":"123","size":[300,250],"bidFloor":1.5}`,
			expected:    false,
		},
		{
			description: "bidFloorCur without bidFloor",
			sizes:       `[[300,250]]`,
			params:      `{"siteId":"123","size":[300,250],"bidFloorCur":"USD"}`,
			expected:    false,
		},
		{
			description: "bidFloor with well-formed currency",
			sizes:       `[[300,250]]`,
			params:      `{"siteId":"123","size":[300,250],"bidFloor":1.5,"bidFloorCur":"USD"}`,
			expected:    true,
		},
		{
			description: "bidFloor with lowercase currency",
			sizes:       `[[300,250]]`,
			params:      `{"siteId":"123","size":[300,250],"bidFloor":1.5,"bidFloorCur":"usd"}`,
			expected:    false,
		},
		{
			description: "no params at all",
			sizes:       `[[300,250]]`,
			params:      ``,
			expected:    false,
		},
	}

	for _, test := range tests {
		bid := &pbs.BidRequest{
			BidID:  "1",
			Sizes:  json.RawMessage(test.sizes),
			Params: json.RawMessage(test.params),
		}
		assert.Equal(t, test.expected, adapter.IsBidRequestValid(bid), test.description)
	}
}
