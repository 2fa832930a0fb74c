package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"multiblog/app/models"
)

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	page := func(name string) *template.Template {
		return template.Must(template.ParseFiles(
			filepath.Join(basePath, "app/views/layout.html"),
			filepath.Join(basePath, "app/views", name),
		))
	}

	templates := make(map[string]*template.Template)
	templates["front"] = page("front.html")
	templates["permalink"] = page("permalink.html")
	templates["editpost"] = page("editpost.html")
	templates["signup"] = page("signup-form.html")
	templates["login"] = page("login-form.html")
	templates["welcome"] = page("welcome.html")
	templates["comment"] = page("comment.html")
	templates["confirmation"] = page("confirmation.html")
	templates["error"] = page("error.html")
	return templates
}

// render executes a named template against data
func render(w http.ResponseWriter, templates map[string]*template.Template, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates[name].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// renderError shows the generic error page with a back-link
func renderError(w http.ResponseWriter, templates map[string]*template.Template, user *models.User, message, backURL string) {
	render(w, templates, "error", struct {
		User  *models.User
		Error string
		URL   string
	}{user, message, backURL})
}

// notFound responds with a bare 404
func notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}
