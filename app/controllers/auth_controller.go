package controllers

import (
	"errors"
	"html/template"
	"net/http"

	"multiblog/app/auth"
	"multiblog/app/models"
	"multiblog/app/services"
)

// AuthController handles signup, login, logout and the welcome view
type AuthController struct {
	userService *services.UserService
	sessions    *auth.Sessions
	templates   map[string]*template.Template
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, sessions *auth.Sessions, basePath string) *AuthController {
	return &AuthController{
		userService: userService,
		sessions:    sessions,
		templates:   loadTemplates(basePath),
	}
}

// signupData feeds the signup form template. Entered username and email
// are preserved across validation failures; the password never is.
type signupData struct {
	User          *models.User
	Username      string
	Email         string
	ErrorUsername string
	ErrorPassword string
	ErrorVerify   string
	ErrorEmail    string
}

// SignupForm displays the registration form
func (ac *AuthController) SignupForm(w http.ResponseWriter, r *http.Request) {
	render(w, ac.templates, "signup", signupData{User: ac.sessions.CurrentUser(r)})
}

// Signup validates the submission and registers the user
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := models.SignupForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Verify:   r.FormValue("verify"),
		Email:    r.FormValue("email"),
	}

	data := signupData{
		Username: form.Username,
		Email:    form.Email,
	}

	if fieldErrs := form.Check(); len(fieldErrs) > 0 {
		data.ErrorUsername = fieldErrs["username"]
		data.ErrorPassword = fieldErrs["password"]
		data.ErrorVerify = fieldErrs["verify"]
		data.ErrorEmail = fieldErrs["email"]
		render(w, ac.templates, "signup", data)
		return
	}

	user, err := ac.userService.Register(form.Username, form.Password, form.Email)
	if errors.Is(err, services.ErrUserExists) {
		data.ErrorUsername = "That user already exists."
		render(w, ac.templates, "signup", data)
		return
	}
	if err != nil {
		http.Error(w, "Failed to register: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ac.sessions.Login(w, user)
	http.Redirect(w, r, "/welcome", http.StatusSeeOther)
}

// LoginForm displays the login form
func (ac *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, ac.templates, "login", struct {
		User  *models.User
		Error string
	}{ac.sessions.CurrentUser(r), ""})
}

// Login authenticates a user
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := ac.userService.Login(r.FormValue("username"), r.FormValue("password"))
	if errors.Is(err, services.ErrInvalidLogin) {
		// Generic message; does not reveal whether the username exists
		render(w, ac.templates, "login", struct {
			User  *models.User
			Error string
		}{nil, "Invalid login"})
		return
	}
	if err != nil {
		http.Error(w, "Failed to log in: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ac.sessions.Login(w, user)
	http.Redirect(w, r, "/welcome", http.StatusSeeOther)
}

// Logout clears the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.sessions.Logout(w)
	http.Redirect(w, r, "/signup", http.StatusFound)
}

// Welcome greets the logged-in user or redirects to signup
func (ac *AuthController) Welcome(w http.ResponseWriter, r *http.Request) {
	user := ac.sessions.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}
	render(w, ac.templates, "welcome", struct {
		User *models.User
	}{user})
}
