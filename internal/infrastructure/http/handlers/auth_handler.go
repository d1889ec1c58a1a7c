package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/application/auth"
	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/middleware"
)

// AuthHandler serves the /auth routes. Token pairs travel both in the JSON
// body and as httpOnly cookies.
type AuthHandler struct {
	register           *auth.Register
	login              *auth.Login
	logout             *auth.Logout
	refresh            *auth.Refresh
	verifyEmail        *auth.VerifyEmail
	resendVerification *auth.SendEmailVerification
	forgotPassword     *auth.ForgotPassword
	resetPassword      *auth.ResetPassword
	changePassword     *auth.ChangePassword
	validate           *validator.Validate
	audit              ports.TaskEnqueuer
	log                zerolog.Logger
	secureCookies      bool
}

func NewAuthHandler(
	register *auth.Register,
	login *auth.Login,
	logout *auth.Logout,
	refresh *auth.Refresh,
	verifyEmail *auth.VerifyEmail,
	resendVerification *auth.SendEmailVerification,
	forgotPassword *auth.ForgotPassword,
	resetPassword *auth.ResetPassword,
	changePassword *auth.ChangePassword,
	audit ports.TaskEnqueuer,
	log zerolog.Logger,
	secureCookies bool,
) *AuthHandler {
	return &AuthHandler{
		register:           register,
		login:              login,
		logout:             logout,
		refresh:            refresh,
		verifyEmail:        verifyEmail,
		resendVerification: resendVerification,
		forgotPassword:     forgotPassword,
		resetPassword:      resetPassword,
		changePassword:     changePassword,
		validate:           validator.New(),
		audit:              audit,
		log:                log,
		secureCookies:      secureCookies,
	}
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Username string `json:"username" validate:"required,min=3,max=64"`
		Password string `json:"password" validate:"required,min=8,max=128"`
		Fullname string `json:"fullname" validate:"max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	email := SanitizeEmail(body.Email)
	username := SanitizeUsername(body.Username)
	if email == "" || username == "" {
		writeError(w, h.log, apperror.Validation("invalid email or username"))
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Email:    email,
		Username: username,
		Password: body.Password,
		Fullname: body.Fullname,
	})
	if err != nil {
		AuditEmit(h.log, r, h.audit, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.register", result.User.ID.Hex(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeData(w, http.StatusCreated, map[string]interface{}{
		"user": result.User,
	}, "user registered successfully and verification email has been sent")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    SanitizeEmail(body.Email),
		Password: body.Password,
	})
	if err != nil {
		AuditEmit(h.log, r, h.audit, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.login", result.User.ID.Hex(), true, "")
	middleware.RecordAuthAttempt("login", true)
	h.setAuthCookies(w, result.AccessToken, result.RefreshToken)
	writeData(w, http.StatusOK, map[string]interface{}{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	}, "user logged in successfully")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	if err := h.logout.Execute(r.Context(), user.ID); err != nil {
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.logout", user.ID.Hex(), true, "")
	h.clearAuthCookies(w)
	writeData(w, http.StatusOK, map[string]interface{}{}, "user logged out")
}

func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	writeData(w, http.StatusOK, user.Public(), "current user fetched successfully")
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token := refreshTokenFromRequest(r)
	result, err := h.refresh.Execute(r.Context(), token)
	if err != nil {
		AuditEmit(h.log, r, h.audit, "auth.refresh", "", false, err.Error())
		middleware.RecordAuthAttempt("refresh", false)
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "auth.refresh", "", true, "")
	middleware.RecordAuthAttempt("refresh", true)
	h.setAuthCookies(w, result.AccessToken, result.RefreshToken)
	writeData(w, http.StatusOK, map[string]interface{}{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	}, "access token refreshed")
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "verificationToken")
	result, err := h.verifyEmail.Execute(r.Context(), token)
	if err != nil {
		AuditEmit(h.log, r, h.audit, "user.verify_email", "", false, err.Error())
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.verify_email", "", true, "")
	writeData(w, http.StatusOK, map[string]interface{}{
		"isEmailVerified": result.IsEmailVerified,
	}, "email is verified")
}

func (h *AuthHandler) ResendEmailVerification(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	if err := h.resendVerification.Execute(r.Context(), user.ID); err != nil {
		AuditEmit(h.log, r, h.audit, "user.resend_verification", user.ID.Hex(), false, err.Error())
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.resend_verification", user.ID.Hex(), true, "")
	writeData(w, http.StatusOK, map[string]interface{}{}, "verification email has been sent")
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	if err := h.forgotPassword.Execute(r.Context(), SanitizeEmail(body.Email)); err != nil {
		AuditEmit(h.log, r, h.audit, "user.forgot_password", "", false, err.Error())
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.forgot_password", "", true, "")
	writeData(w, http.StatusOK, map[string]interface{}{}, "password reset email has been sent")
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "resetToken")
	var body struct {
		NewPassword string `json:"newPassword" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	if err := h.resetPassword.Execute(r.Context(), token, body.NewPassword); err != nil {
		AuditEmit(h.log, r, h.audit, "user.reset_password", "", false, err.Error())
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.reset_password", "", true, "")
	writeData(w, http.StatusOK, map[string]interface{}{}, "password reset successfully")
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.log, apperror.Unauthorized("unauthorized request"))
		return
	}
	var body struct {
		OldPassword string `json:"oldPassword" validate:"required,max=128"`
		NewPassword string `json:"newPassword" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.log, apperror.Validation("invalid request body"))
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeError(w, h.log, validationError(err))
		return
	}
	err := h.changePassword.Execute(r.Context(), auth.ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: body.OldPassword,
		NewPassword: body.NewPassword,
	})
	if err != nil {
		AuditEmit(h.log, r, h.audit, "user.change_password", user.ID.Hex(), false, err.Error())
		writeError(w, h.log, err)
		return
	}
	AuditEmit(h.log, r, h.audit, "user.change_password", user.ID.Hex(), true, "")
	writeData(w, http.StatusOK, map[string]interface{}{}, "password changed successfully")
}

// refreshTokenFromRequest reads the refresh token from the cookie or, when
// absent, from the JSON body.
func refreshTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie("refreshToken"); err == nil && c.Value != "" {
		return c.Value
	}
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return ""
	}
	return body.RefreshToken
}
