package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetupViper(v)

	cfg, err := New(v)
	require.NoError(t, err)

	ix, ok := cfg.Adapters["ix"]
	require.True(t, ok, "expected an ix adapter entry")
	assert.Equal(t, "http://as.casalemedia.com/cygnus", ix.Endpoint)
	assert.Equal(t, "https://as-sec.casalemedia.com/cygnus", ix.SecureEndpoint)
	assert.Equal(t, "//ssum-sec.casalemedia.com/usermatchredir?s=184932&cb=", ix.UserSyncURL)
	assert.Equal(t, "http://localhost:8000", cfg.ExternalURL)
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	SetupViper(v)
	v.Set("adapters.ix.endpoint", "http://localhost:9000/cygnus")

	cfg, err := New(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/cygnus", cfg.Adapters["ix"].Endpoint)
}

func TestFirstPartyDataSource(t *testing.T) {
	v := viper.New()
	SetupViper(v)

	fpd := NewFirstPartyDataSource(v, "ix")
	assert.Empty(t, fpd.FirstPartyData())

	// the store is read at call time, so later config changes show up
	v.Set("adapters.ix.first_party_data", map[string]string{"abc": "123"})
	assert.Equal(t, map[string]string{"abc": "123"}, fpd.FirstPartyData())
}
