package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"multiblog/app/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setupTestTemplates(t *testing.T) string {
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")
	require.NoError(t, os.MkdirAll(viewsDir, 0755))

	// Minimal templates exposing the fields the handlers feed them
	templates := map[string]string{
		"layout.html":       `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		"front.html":        `{{define "content"}}<div class="posts">{{range .Posts}}<h2>{{.Subject}}</h2>{{end}}</div>{{end}}`,
		"permalink.html":    `{{define "content"}}<h1>{{.Post.Subject}}</h1><p>{{.Post.Content}}</p><span>{{.Post.Likes}} likes</span>{{range .Comments}}<p class="comment">{{.Content}}</p>{{end}}{{end}}`,
		"editpost.html":     `{{define "content"}}<h1>{{.Title}} post</h1>{{if .Error}}<p class="error">{{.Error}}</p>{{end}}<form action="{{.Action}}"><input name="subject" value="{{.Subject}}"><textarea name="content">{{.Content}}</textarea></form>{{end}}`,
		"signup-form.html":  `{{define "content"}}<form action="/signup"><input name="username" value="{{.Username}}"><input name="email" value="{{.Email}}"></form>{{.ErrorUsername}}{{.ErrorPassword}}{{.ErrorVerify}}{{.ErrorEmail}}{{end}}`,
		"login-form.html":   `{{define "content"}}<form action="/login"></form>{{.Error}}{{end}}`,
		"welcome.html":      `{{define "content"}}Welcome, {{.User.Name}}!{{end}}`,
		"comment.html":      `{{define "content"}}<form action="/comment/{{.PostID}}"></form>{{.Error}}{{end}}`,
		"confirmation.html": `{{define "content"}}Are you sure?<a href="{{.Action}}?confirmation=yes">Yes</a>{{end}}`,
		"error.html":        `{{define "content"}}<p class="error">{{.Error}}</p><a href="{{.URL}}">Back</a>{{end}}`,
	}
	for name, content := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(viewsDir, name), []byte(content), 0644))
	}

	return tmpDir
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) *mux.Router {
	db := setupTestDB(t)
	basePath := setupTestTemplates(t)
	cfg := &config.Config{}
	cfg.Auth.CookieSecret = "test-secret"
	return SetupRoutesWithPath(db, cfg, zerolog.Nop(), basePath)
}

// signup registers a user through the router and returns the session
// cookie from the redirect response.
func signup(t *testing.T, router *mux.Router, username, password string) *http.Cookie {
	t.Helper()
	form := url.Values{
		"username": {username},
		"password": {password},
		"verify":   {password},
	}
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// createPost submits a new post as the given session and returns the
// redirect location ("/blog/{id}").
func createPost(t *testing.T, router *mux.Router, session *http.Cookie, subject, content string) string {
	t.Helper()
	form := url.Values{
		"subject": {subject},
		"content": {content},
	}
	req := httptest.NewRequest("POST", "/blog/newpost", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(session)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := w.Result().Location()
	require.NoError(t, err)
	return loc.Path
}

func get(router *mux.Router, path string, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *mux.Router, path string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
