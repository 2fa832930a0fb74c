package models

// SignupForm carries a registration submission through validation.
// Field errors are keyed by form field so the template can render them
// inline next to the offending input.
type SignupForm struct {
	Username string
	Password string
	Verify   string
	Email    string
}

// Check validates the submission and returns per-field error messages.
// The returned map is empty when the form is acceptable. The password is
// never echoed back in any message.
func (f *SignupForm) Check() map[string]string {
	errs := make(map[string]string)

	if !ValidUsername(f.Username) {
		errs["username"] = "That's not a valid username."
	}
	if !ValidPassword(f.Password) {
		errs["password"] = "That wasn't a valid password."
	} else if f.Password != f.Verify {
		errs["verify"] = "Your passwords didn't match."
	}
	if !ValidEmail(f.Email) {
		errs["email"] = "That's not a valid email."
	}

	return errs
}
