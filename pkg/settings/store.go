package settings

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"
)

// ErrInvalid marks payloads rejected by validation.
var ErrInvalid = errors.New("settings: invalid payload")

// Profile is the signed-in administrator shown on the profile tab.
type Profile struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Initials returns up to two upper-case initials for the avatar badge.
func (p Profile) Initials() string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(p.FullName) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteString(strings.ToUpper(string(r)))
		if count++; count == 2 {
			break
		}
	}
	return b.String()
}

// DefaultProfile is the seeded super admin.
func DefaultProfile() Profile {
	return Profile{FullName: "MS Hadianto", Email: "mshadianto@hadiant.ai"}
}

// Store keeps settings values and the admin profile in process memory.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	values  map[string]string
	profile Profile
}

// NewStore seeds a store with placeholder values and the default profile.
func NewStore() *Store {
	return &Store{
		values:  DefaultValues(),
		profile: DefaultProfile(),
	}
}

// Values returns a copy of the current values.
func (s *Store) Values(context.Context) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}

// Save validates and merges the provided values. Keys are normalised first;
// a value equal to MaskPlaceholder leaves the stored value untouched so a
// masked field can be submitted back unchanged. Read-only fields are ignored.
func (s *Store) Save(_ context.Context, values map[string]string) error {
	normalized := make(map[string]string, len(values))
	for rawKey, value := range values {
		key := NormalizeKey(rawKey)
		if field, ok := lookupField(key); ok && field.ReadOnly {
			continue
		}
		if value == MaskPlaceholder {
			continue
		}
		normalized[key] = strings.TrimSpace(value)
	}
	if err := ValidateValues(normalized); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range normalized {
		s.values[key] = value
	}
	return nil
}

// Profile returns the current admin profile.
func (s *Store) Profile(context.Context) Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateProfile validates and stores the profile.
func (s *Store) UpdateProfile(_ context.Context, profile Profile) error {
	profile.FullName = strings.TrimSpace(profile.FullName)
	profile.Email = strings.TrimSpace(profile.Email)
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	return nil
}
