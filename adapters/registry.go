package adapters

import (
	"github.com/golang/glog"

	"github.com/prebid/ix-adapter/config"
	"github.com/prebid/ix-adapter/openrtb_ext"
	"github.com/prebid/ix-adapter/pbs"
)

// Builder constructs a Bidder from its config plus the ambient collaborators
// the orchestrator injects: the hosting page's context and the first-party
// data store. The page context decides the endpoint once, at build time.
type Builder func(cfg config.Adapter, page *pbs.PageContext, fpd config.FirstPartyDataSource) (Bidder, error)

var coreBidders = make(map[openrtb_ext.BidderName]Builder)

// RegisterBidder adds a builder to the registry. Adapters call this from
// their init(), so registration happens once at module load. Duplicate
// registration is a programming error.
func RegisterBidder(name openrtb_ext.BidderName, builder Builder) {
	if _, dup := coreBidders[name]; dup {
		glog.Fatalf("bidder %s registered twice", name)
	}
	coreBidders[name] = builder
}

// BidderBuilder returns the registered builder for the given bidder.
func BidderBuilder(name openrtb_ext.BidderName) (Builder, bool) {
	builder, ok := coreBidders[name]
	return builder, ok
}
