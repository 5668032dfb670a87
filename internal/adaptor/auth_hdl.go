package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"solar-marketplace/internal/dto/request"
	"solar-marketplace/internal/usecase"
	"solar-marketplace/pkg/middleware"
	"solar-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// sessionCookie mirrors the issued token so browser clients stay logged in
// without storing the credential themselves.
func sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CredentialCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Account created. A verification code has been sent.", response)
}

// RequestOTP handles POST /api/v1/auth/request-otp
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req request.RequestOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.RequestOTP(r.Context(), req.Phone)
	if err != nil {
		respondError(w, h.log, err, "request OTP")
		return
	}

	utils.ResponseSuccess(w, "Verification code sent", response)
}

// VerifyOTP handles POST /api/v1/auth/verify-otp/{phone}
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")

	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.VerifyOTP(r.Context(), phone, req.Code)
	if err != nil {
		respondError(w, h.log, err, "verify OTP")
		return
	}

	http.SetCookie(w, sessionCookie(response.Token, response.ExpiresAt))
	utils.ResponseSuccess(w, "Phone verified successfully", response)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "login")
		return
	}

	http.SetCookie(w, sessionCookie(response.Token, response.ExpiresAt))
	utils.ResponseSuccess(w, "Login successful", response)
}
