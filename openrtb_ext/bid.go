package openrtb_ext

import "fmt"

// BidType describes the allowed values for the media type of a bid.
type BidType string

const (
	BidTypeBanner BidType = "banner"
	BidTypeVideo  BidType = "video"
	BidTypeNative BidType = "native"
)

func ParseBidType(bidType string) (BidType, error) {
	switch bidType {
	case "banner":
		return BidTypeBanner, nil
	case "video":
		return BidTypeVideo, nil
	case "native":
		return BidTypeNative, nil
	}
	return "", fmt.Errorf("invalid BidType: %s", bidType)
}
