package auth

import "fmt"

// Status classifies a failure independently of its identity. Controllers
// map it to an HTTP status code; the use-case layer never inspects it.
type Status string

const (
	StatusNotFound        Status = "not_found"
	StatusInvalid         Status = "invalid"
	StatusRepositoryError Status = "repository_error"
	StatusProviderError   Status = "provider_error"
	StatusConflict        Status = "conflict"
	StatusUnauthorized    Status = "unauthorized"
)

// DomainError is the closed set of expected failures. Every fallible
// operation in this package returns one through a Result instead of a
// raw error; the unexported method keeps the taxonomy sealed.
type DomainError interface {
	error
	Status() Status
	domainError()
}

// Collaborator names and methods used in Provider/Repository error messages.
const (
	ProviderPassword    = "password"
	ProviderCrypto      = "crypto"
	ProviderToken       = "token"
	ProviderFacebookAPI = "facebook api"
	ProviderGoogleAPI   = "google api"
	ProviderHTTPClient  = "http client"

	MethodEncrypt     = "encrypt"
	MethodCompare     = "compare"
	MethodGenerateJwt = "generate jwt"
	MethodVerifyJwt   = "verify jwt"
	MethodGenerate    = "generate"
	MethodGenerateID  = "generate id"
	MethodLoadUser    = "load user"
	MethodGet         = "get"

	RepositoryUsers                = "users"
	RepositoryTokensForgotPassword = "tokens forgot password"

	MethodFindByEmail             = "find by email"
	MethodSave                    = "save"
	MethodSaveWithFacebookAccount = "save with facebook account"
	MethodSaveWithGoogleAccount   = "save with google account"
	MethodUpdate                  = "update"
)

// ProviderError reports a failure inside an external-capability provider.
type ProviderError struct {
	Provider     string
	Method       string
	ExternalName string
	Err          error
}

func NewProviderError(provider, method, externalName string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Method: method, ExternalName: externalName, Err: err}
}

func (e *ProviderError) Error() string {
	message := fmt.Sprintf("Error in %s provider in %s method.", e.Provider, e.Method)
	if e.ExternalName != "" {
		message += fmt.Sprintf(" Error in external provider name: %s.", e.ExternalName)
	}
	return message
}

func (e *ProviderError) Status() Status { return StatusProviderError }
func (e *ProviderError) Unwrap() error  { return e.Err }
func (e *ProviderError) domainError()   {}

// RepositoryError reports a persistence failure.
type RepositoryError struct {
	Repository   string
	Method       string
	ExternalName string
	Err          error
}

func NewRepositoryError(repository, method, externalName string, err error) *RepositoryError {
	return &RepositoryError{Repository: repository, Method: method, ExternalName: externalName, Err: err}
}

func (e *RepositoryError) Error() string {
	message := fmt.Sprintf("Error in %s repository in %s method.", e.Repository, e.Method)
	if e.ExternalName != "" {
		message += fmt.Sprintf(" Error in external lib name: %s.", e.ExternalName)
	}
	return message
}

func (e *RepositoryError) Status() Status { return StatusRepositoryError }
func (e *RepositoryError) Unwrap() error  { return e.Err }
func (e *RepositoryError) domainError()   {}

// SignInErrorMotive narrows why a sign-in was refused.
type SignInErrorMotive string

const (
	SignInMotiveEmailNotFound    SignInErrorMotive = "email not found"
	SignInMotivePasswordNotMatch SignInErrorMotive = "password not match"
	SignInMotiveUserNotFound     SignInErrorMotive = "user not found"
)

// SignInError is a refused authentication attempt. Missing accounts map to
// not_found, a wrong password maps to invalid.
type SignInError struct {
	Motive SignInErrorMotive
}

func NewSignInError(motive SignInErrorMotive) *SignInError {
	return &SignInError{Motive: motive}
}

func (e *SignInError) Error() string {
	return fmt.Sprintf("Error sign in because %s.", e.Motive)
}

func (e *SignInError) Status() Status {
	if e.Motive == SignInMotiveEmailNotFound || e.Motive == SignInMotiveUserNotFound {
		return StatusNotFound
	}
	return StatusInvalid
}

func (e *SignInError) domainError() {}

// InvalidEmailError rejects a malformed email address.
type InvalidEmailError struct {
	Email string
}

func NewInvalidEmailError(email string) *InvalidEmailError {
	return &InvalidEmailError{Email: email}
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("This email is invalid: %s.", e.Email)
}

func (e *InvalidEmailError) Status() Status { return StatusInvalid }
func (e *InvalidEmailError) domainError()   {}

// InvalidPasswordMotive narrows why a password failed validation.
type InvalidPasswordMotive string

const (
	PasswordMotiveIsBlank         InvalidPasswordMotive = "is blank"
	PasswordMotiveLessThan8Chars  InvalidPasswordMotive = "is less than 8 characters"
	PasswordMotiveHasSpace        InvalidPasswordMotive = "has space"
	PasswordMotiveMoreThan30Chars InvalidPasswordMotive = "is more than 30 characters"
)

// InvalidPasswordError rejects a malformed password.
type InvalidPasswordError struct {
	Motive InvalidPasswordMotive
}

func NewInvalidPasswordError(motive InvalidPasswordMotive) *InvalidPasswordError {
	return &InvalidPasswordError{Motive: motive}
}

func (e *InvalidPasswordError) Error() string {
	return fmt.Sprintf("Invalid password because %s.", e.Motive)
}

func (e *InvalidPasswordError) Status() Status { return StatusInvalid }
func (e *InvalidPasswordError) domainError()   {}

// EmailAlreadyExistsError signals a duplicate sign-up.
type EmailAlreadyExistsError struct {
	Email Email
}

func NewEmailAlreadyExistsError(email Email) *EmailAlreadyExistsError {
	return &EmailAlreadyExistsError{Email: email}
}

func (e *EmailAlreadyExistsError) Error() string {
	return fmt.Sprintf("This email already exists: %s.", e.Email.Value())
}

func (e *EmailAlreadyExistsError) Status() Status { return StatusConflict }
func (e *EmailAlreadyExistsError) domainError()   {}

// InvalidTokenError rejects an access token that fails verification.
type InvalidTokenError struct {
	Err error
}

func NewInvalidTokenError(err error) *InvalidTokenError {
	return &InvalidTokenError{Err: err}
}

func (e *InvalidTokenError) Error() string {
	return "This access token is invalid."
}

func (e *InvalidTokenError) Status() Status { return StatusUnauthorized }
func (e *InvalidTokenError) Unwrap() error  { return e.Err }
func (e *InvalidTokenError) domainError()   {}

// LoadUserGoogleApiError reports a bad status or payload from the Google
// userinfo endpoint. Classified as invalid: the access token, not the
// infrastructure, is the usual culprit.
type LoadUserGoogleApiError struct {
	Err error
}

func NewLoadUserGoogleApiError(err error) *LoadUserGoogleApiError {
	return &LoadUserGoogleApiError{Err: err}
}

func (e *LoadUserGoogleApiError) Error() string {
	return "Error in load user google api."
}

func (e *LoadUserGoogleApiError) Status() Status { return StatusInvalid }
func (e *LoadUserGoogleApiError) Unwrap() error  { return e.Err }
func (e *LoadUserGoogleApiError) domainError()   {}

// LoadUserFacebookApiError reports a bad response from the Facebook Graph API.
type LoadUserFacebookApiError struct {
	Err error
}

func NewLoadUserFacebookApiError(err error) *LoadUserFacebookApiError {
	return &LoadUserFacebookApiError{Err: err}
}

func (e *LoadUserFacebookApiError) Error() string {
	return "Error in load user facebook api."
}

func (e *LoadUserFacebookApiError) Status() Status { return StatusInvalid }
func (e *LoadUserFacebookApiError) Unwrap() error  { return e.Err }
func (e *LoadUserFacebookApiError) domainError()   {}
