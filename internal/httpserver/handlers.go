package httpserver

import (
	"encoding/json"
	"net/http"

	usecase "accounts/backend/internal/usecase/auth"
)

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Credentials         *credentialsPayload `json:"credentials"`
	FacebookAccessToken *string             `json:"facebookAccessToken"`
	GoogleAccessToken   *string             `json:"googleAccessToken"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type userPayload struct {
	ID string `json:"id"`
}

type signInResponse struct {
	AccessToken string `json:"accessToken"`
}

type signUpResponse struct {
	AccessToken string      `json:"accessToken"`
	User        userPayload `json:"user"`
}

type meResponse struct {
	User userPayload `json:"user"`
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var request signInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := usecase.SignInInput{
		FacebookAccessToken: request.FacebookAccessToken,
		GoogleAccessToken:   request.GoogleAccessToken,
	}
	if request.Credentials != nil {
		input.Credentials = &usecase.Credentials{
			Email:    request.Credentials.Email,
			Password: request.Credentials.Password,
		}
	}

	result := s.signIn.Execute(r.Context(), input)
	if result.IsFailure() {
		writeDomainError(w, result.Err())
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{AccessToken: result.Value().AccessToken})
}

// handleSignUp registers the user and immediately signs them in, so the
// client gets an access token in the same round trip.
func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var request signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resultSignUp := s.signUp.Execute(r.Context(), usecase.SignUpInput{
		Email:    request.Email,
		Password: request.Password,
	})
	if resultSignUp.IsFailure() {
		writeDomainError(w, resultSignUp.Err())
		return
	}
	userID := resultSignUp.Value().UserID

	resultSignIn := s.signIn.Execute(r.Context(), usecase.SignInInput{UserID: &userID})
	if resultSignIn.IsFailure() {
		writeDomainError(w, resultSignIn.Err())
		return
	}

	writeJSON(w, http.StatusCreated, signUpResponse{
		AccessToken: resultSignIn.Value().AccessToken,
		User:        userPayload{ID: userID.Value()},
	})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var request forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := s.forgotPassword.Execute(r.Context(), usecase.SendForgotPasswordNotificationInput{
		Email: request.Email,
	})
	if result.IsFailure() {
		writeDomainError(w, result.Err())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	token := extractBearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	result := s.jwtProvider.VerifyJwt(token)
	if result.IsFailure() {
		writeDomainError(w, result.Err())
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		User: userPayload{ID: result.Value().UserID.Value()},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
