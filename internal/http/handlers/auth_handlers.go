package handlers

import (
	"net/http"
)

// RegisterHandler godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 202 {object} EmptyResult
// @Failure 400 {object} apierr.ResponseError "WrongFormat, UserExists or DbError"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, registerRequestSchema, &creds); err != nil {
		writeFormatError(w, r, err)
		return
	}

	if err := credentials.Register(r.Context(), creds.Username, creds.Password); err != nil {
		writeError(w, r, err)
		return
	}

	writeAccepted(w, r, EmptyResult{})
}

// LoginHandler godoc
// @Summary Verify credentials and return the user id
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 202 {object} LoginResult
// @Failure 400 {object} apierr.ResponseError "WrongFormat, LoginError or DbError"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, loginRequestSchema, &creds); err != nil {
		writeFormatError(w, r, err)
		return
	}

	id, err := credentials.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAccepted(w, r, LoginResult{ID: id})
}
