package usersync

import (
	"fmt"
	"net/url"
)

// NewIxSyncer builds the redirect syncer for the exchange. userSyncURL is the
// exchange's match redirect endpoint (ending in cb=); externalURL is the
// host's own URL, which the exchange redirects back to.
func NewIxSyncer(userSyncURL string, externalURL string) Usersyncer {
	redirectURI := fmt.Sprintf("%s/setuid?bidder=ix&uid=__UID__", externalURL)

	return &syncer{
		familyName: "ix",
		syncInfo: &UsersyncInfo{
			URL:         fmt.Sprintf("%s%s", userSyncURL, url.QueryEscape(redirectURI)),
			Type:        "redirect",
			SupportCORS: false,
		},
	}
}
