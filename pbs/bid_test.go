package pbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBanner(t *testing.T) {
	assert.True(t, (&BidRequest{MediaTypes: &MediaTypes{Banner: &BannerMediaType{}}}).IsBanner())
	assert.True(t, (&BidRequest{MediaType: "banner"}).IsBanner())
	assert.False(t, (&BidRequest{MediaType: "video"}).IsBanner())
	assert.False(t, (&BidRequest{MediaTypes: &MediaTypes{}}).IsBanner())
	assert.False(t, (&BidRequest{}).IsBanner())
}
