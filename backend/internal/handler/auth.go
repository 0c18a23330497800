package handler

import (
	"net/http"

	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	mw "github.com/threads-be/threads/shared/middleware"
	"github.com/threads-be/threads/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), domain.RegistrationData{
		FullName: body.FullName,
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// Login sets the access token cookie and also returns the token for API clients.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, token, err := h.auth.Login(r.Context(), domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     mw.AccessTokenCookie,
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, http.StatusOK, api.LoginResponse{User: user, Token: token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     mw.AccessTokenCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, http.StatusOK, "You logged out")
}

// Check returns the session user as currently stored.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	session, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Check(r.Context(), session.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.CheckResponse{User: user})
}
