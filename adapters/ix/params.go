package ix

import (
	"encoding/json"
	"regexp"

	"github.com/mxmCherry/openrtb"

	"github.com/prebid/ix-adapter/openrtb_ext"
	"github.com/prebid/ix-adapter/pbs"
)

var bidFloorCurPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// parseSize reads a [w,h] integer pair. Anything else - wrong length,
// non-integers, a non-array - reports false.
func parseSize(raw json.RawMessage) (openrtb.Format, bool) {
	var pair []uint64
	if err := json.Unmarshal(raw, &pair); err != nil {
		return openrtb.Format{}, false
	}
	if len(pair) != 2 {
		return openrtb.Format{}, false
	}
	return openrtb.Format{W: pair[0], H: pair[1]}, true
}

// includesSize reports whether the slot's declared sizes contain size.
// Legacy callers may declare a single [w,h] pair rather than a list of
// pairs; both shapes are accepted and neither is normalized away.
func includesSize(declared json.RawMessage, size openrtb.Format) bool {
	if single, ok := parseSize(declared); ok {
		return single.W == size.W && single.H == size.H
	}
	var list []json.RawMessage
	if err := json.Unmarshal(declared, &list); err != nil {
		return false
	}
	for _, raw := range list {
		if pair, ok := parseSize(raw); ok && pair.W == size.W && pair.H == size.H {
			return true
		}
	}
	return false
}

func isValidBidFloorParams(bidFloor *float64, bidFloorCur *string) bool {
	return bidFloor != nil && bidFloorCur != nil && bidFloorCurPattern.MatchString(*bidFloorCur)
}

// IsBidRequestValid reports whether the slot satisfies the exchange's
// constraints: the chosen size must be a valid pair declared by the slot,
// siteId must be a string, and a bid floor is only legal when the floor and
// its currency arrive together and well-formed. All failures are boolean;
// the orchestrator drops invalid slots silently.
func (a *IxAdapter) IsBidRequestValid(bid *pbs.BidRequest) bool {
	var params openrtb_ext.ExtImpIx
	if err := json.Unmarshal(bid.Params, &params); err != nil {
		return false
	}

	size, ok := parseSize(params.Size)
	if !ok {
		return false
	}
	if !includesSize(bid.Sizes, size) {
		return false
	}
	if params.SiteID == nil {
		return false
	}
	if params.BidFloor != nil || params.BidFloorCur != nil {
		if !isValidBidFloorParams(params.BidFloor, params.BidFloorCur) {
			return false
		}
	}
	return true
}
