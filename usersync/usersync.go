package usersync

// UsersyncInfo tells the page how to sync user ids with a bidder.
// For more information, see http://clearcode.cc/2015/12/cookie-syncing/
type UsersyncInfo struct {
	URL         string `json:"url,omitempty"`
	Type        string `json:"type,omitempty"`
	SupportCORS bool   `json:"supportCORS,omitempty"`
}

type Usersyncer interface {
	// GetUsersyncInfo returns the parameters needed to sync users with this bidder.
	GetUsersyncInfo() *UsersyncInfo
	// FamilyName identifies the space of cookies this bidder accesses.
	FamilyName() string
}

type syncer struct {
	familyName string
	syncInfo   *UsersyncInfo
}

func (s *syncer) GetUsersyncInfo() *UsersyncInfo {
	return s.syncInfo
}

func (s *syncer) FamilyName() string {
	return s.familyName
}
