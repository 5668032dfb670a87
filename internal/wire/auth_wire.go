package wire

import (
	"net/http"

	"solar-marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	rateLimitMW func(http.Handler) http.Handler,
) {
	// All credential endpoints sit behind the per-IP limiter.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(rateLimitMW)

		r.Post("/register", authHandler.Register)
		r.Post("/request-otp", authHandler.RequestOTP)
		r.Post("/verify-otp/{phone}", authHandler.VerifyOTP)
		r.Post("/login", authHandler.Login)
	})
}
