package auth

// Access is the capability an API key grants.
type Access int

const (
	// AccessInvalid means the key is unknown.
	AccessInvalid Access = iota
	// AccessClient is granted to mobile clients.
	AccessClient
	// AccessAdmin is granted to superusers.
	AccessAdmin
)

// Authenticator classifies API keys.
type Authenticator interface {
	Authenticate(apiKey string) Access
}

// StaticKeys is an Authenticator over fixed allow-lists.
type StaticKeys struct {
	client map[string]struct{}
	admin  map[string]struct{}
}

// NewStaticKeys builds a StaticKeys from client and admin key lists.
func NewStaticKeys(clientKeys, adminKeys []string) *StaticKeys {
	k := &StaticKeys{
		client: make(map[string]struct{}, len(clientKeys)),
		admin:  make(map[string]struct{}, len(adminKeys)),
	}
	for _, key := range clientKeys {
		k.client[key] = struct{}{}
	}
	for _, key := range adminKeys {
		k.admin[key] = struct{}{}
	}
	return k
}

// Authenticate implements Authenticator.
func (k *StaticKeys) Authenticate(apiKey string) Access {
	if apiKey == "" {
		return AccessInvalid
	}
	if _, ok := k.admin[apiKey]; ok {
		return AccessAdmin
	}
	if _, ok := k.client[apiKey]; ok {
		return AccessClient
	}
	return AccessInvalid
}
