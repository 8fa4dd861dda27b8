package session

// Storage keys. These match what the partner web portal historically wrote,
// so a migrated state file stays readable.
const (
	tokenKeyPrefix = "token_partner_"
	idKeyPrefix    = "id_partner_"
	businessIDKey  = "roleid"
)

func tokenKey(r Role) string { return tokenKeyPrefix + string(r) }
func idKey(r Role) string    { return idKeyPrefix + string(r) }

// Store resolves the active partner session and manages login/logout writes.
// Every authenticated call in the portal goes through Resolve rather than
// re-scanning storage itself.
type Store struct {
	kv Storage
}

func NewStore(kv Storage) *Store {
	return &Store{kv: kv}
}

// Resolve scans roles in fixed priority order and returns the first with both
// a token and a partner id present. The second return is false when nobody is
// signed in; callers treat that as "log in first", never as a failure.
func (s *Store) Resolve() (Session, bool) {
	for _, role := range roleOrder {
		token, _ := s.kv.Get(tokenKey(role))
		id, _ := s.kv.Get(idKey(role))
		if token != "" && id != "" {
			return Session{Role: role, Token: token, PartnerID: id}, true
		}
	}
	return Session{}, false
}

// Start persists a fresh login for role, overwriting any prior credential for
// that role. Other roles are left untouched.
func (s *Store) Start(role Role, token, partnerID string) error {
	if err := s.kv.Set(tokenKey(role), token); err != nil {
		return err
	}
	return s.kv.Set(idKey(role), partnerID)
}

// End removes the credential pair for role along with the cached business id
// alias.
func (s *Store) End(role Role) error {
	if err := s.kv.Delete(tokenKey(role)); err != nil {
		return err
	}
	if err := s.kv.Delete(idKey(role)); err != nil {
		return err
	}
	return s.kv.Delete(businessIDKey)
}

// SetBusinessID caches the scoping id ("roleid") of the active partner's
// business, written after a profile fetch.
func (s *Store) SetBusinessID(id string) error {
	return s.kv.Set(businessIDKey, id)
}

// BusinessID returns the cached business scoping id, if any.
func (s *Store) BusinessID() (string, bool) {
	v, ok := s.kv.Get(businessIDKey)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
