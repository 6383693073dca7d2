package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration holds everything the module reads from the host's config store.
type Configuration struct {
	// ExternalURL is the host's own URL, used when building usersync redirects.
	ExternalURL string             `mapstructure:"external_url"`
	Adapters    map[string]Adapter `mapstructure:"adapters"`
}

// Adapter holds the per-bidder config.
type Adapter struct {
	// Endpoint is used when the hosting page was loaded over plain HTTP.
	Endpoint string `mapstructure:"endpoint"`
	// SecureEndpoint is used when the hosting page was loaded over HTTPS.
	SecureEndpoint string `mapstructure:"secure_endpoint"`
	UserSyncURL    string `mapstructure:"usersync_url"`
}

// New uses viper to get our configuration.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}
	return &c, nil
}

// SetupViper sets the viper defaults so the module runs unconfigured.
func SetupViper(v *viper.Viper) {
	v.SetConfigName("ix-adapter")
	v.AddConfigPath(".")
	v.SetDefault("external_url", "http://localhost:8000")
	v.SetDefault("adapters.ix.endpoint", "http://as.casalemedia.com/cygnus")
	v.SetDefault("adapters.ix.secure_endpoint", "https://as-sec.casalemedia.com/cygnus")
	v.SetDefault("adapters.ix.usersync_url", "//ssum-sec.casalemedia.com/usermatchredir?s=184932&cb=")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// FirstPartyDataSource hands out the page-level key/value targeting map that
// gets appended to the outbound site.page. Implementations are read at call
// time, so config changes between auctions are picked up.
type FirstPartyDataSource interface {
	FirstPartyData() map[string]string
}

// NewFirstPartyDataSource reads the targeting map from the given viper store
// under adapters.{bidder}.first_party_data.
func NewFirstPartyDataSource(v *viper.Viper, bidder string) FirstPartyDataSource {
	return &viperFPD{v: v, key: "adapters." + bidder + ".first_party_data"}
}

type viperFPD struct {
	v   *viper.Viper
	key string
}

func (f *viperFPD) FirstPartyData() map[string]string {
	return f.v.GetStringMapString(f.key)
}
