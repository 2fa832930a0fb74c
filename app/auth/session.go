package auth

import (
	"net/http"
	"strconv"

	"multiblog/app/models"
)

const sessionCookie = "user_id"

// UserGetter resolves a user id to a user record.
type UserGetter interface {
	GetByID(id int) (*models.User, error)
}

// Sessions resolves an inbound request's identity cookie into a user
// record and writes the cookie on login and logout.
type Sessions struct {
	codec *Codec
	users UserGetter
}

// NewSessions creates a session resolver over the given codec and user
// lookup.
func NewSessions(codec *Codec, users UserGetter) *Sessions {
	return &Sessions{codec: codec, users: users}
}

// CurrentUser returns the user identified by the request's session cookie,
// or nil for anonymous. A missing, tampered or stale cookie is never an
// error; it just means no session.
func (s *Sessions) CurrentUser(r *http.Request) *models.User {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	value, ok := s.codec.Verify(c.Value)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil
	}
	return user
}

// Login sets a freshly signed identity cookie for user, path-scoped to
// the whole site.
func (s *Sessions) Login(w http.ResponseWriter, user *models.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.codec.Sign(strconv.Itoa(user.ID)),
		Path:     "/",
		HttpOnly: true,
	})
}

// Logout overwrites the identity cookie with an empty signed value.
func (s *Sessions) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.codec.Sign(""),
		Path:     "/",
		HttpOnly: true,
	})
}
