package usersync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIxSyncer(t *testing.T) {
	syncer := NewIxSyncer("//ssum-sec.casalemedia.com/usermatchredir?s=184932&cb=", "http://localhost:8000")

	info := syncer.GetUsersyncInfo()
	assert.Equal(t, "//ssum-sec.casalemedia.com/usermatchredir?s=184932&cb=http%3A%2F%2Flocalhost%3A8000%2Fsetuid%3Fbidder%3Dix%26uid%3D__UID__", info.URL)
	assert.Equal(t, "redirect", info.Type)
	assert.False(t, info.SupportCORS)
	assert.Equal(t, "ix", syncer.FamilyName())
}
