package storefront

import "sync"

// Storage keys shared with the web client.
const (
	keyToken = "authToken"
	keyUser  = "currentUser"
	keyCart  = "cart"
)

// Store abstracts the key-value persistence behind a session, typically the
// browser's localStorage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStore is an in-process Store, safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// UserInfo is the signed-in user snapshot kept alongside the token.
type UserInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session ties the auth token, the current user and the cart to a Store so
// they survive page reloads.
type Session struct {
	Token string
	User  *UserInfo
	Cart  Cart

	store Store
}

// NewSession creates an empty session over the given store.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Load restores token, user and cart from the store. A corrupt cart or user
// entry is discarded rather than failing the whole session.
func (s *Session) Load() {
	if token, ok := s.store.Get(keyToken); ok {
		s.Token = token
	}
	if raw, ok := s.store.Get(keyUser); ok {
		var u UserInfo
		if err := unmarshalString(raw, &u); err == nil {
			s.User = &u
		} else {
			s.store.Delete(keyUser)
		}
	}
	if raw, ok := s.store.Get(keyCart); ok {
		var cart Cart
		if err := unmarshalString(raw, &cart); err == nil {
			s.Cart = cart
		} else {
			s.store.Delete(keyCart)
		}
	}
}

// Save writes the current session state back to the store.
func (s *Session) Save() error {
	if s.Token != "" {
		s.store.Set(keyToken, s.Token)
	} else {
		s.store.Delete(keyToken)
	}

	if s.User != nil {
		raw, err := marshalString(s.User)
		if err != nil {
			return err
		}
		s.store.Set(keyUser, raw)
	} else {
		s.store.Delete(keyUser)
	}

	raw, err := marshalString(&s.Cart)
	if err != nil {
		return err
	}
	s.store.Set(keyCart, raw)

	return nil
}

// SignIn records the token and user and persists the session.
func (s *Session) SignIn(token string, user UserInfo) error {
	s.Token = token
	s.User = &user
	return s.Save()
}

// SignOut clears the identity but keeps the cart, so an interrupted shopper
// does not lose their selection.
func (s *Session) SignOut() error {
	s.Token = ""
	s.User = nil
	return s.Save()
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token != ""
}
