package routers

import (
	"bookadoc-service/internal/app/services/auth"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachAuthRoutes(router chi.Router, logger *zap.Logger, authController *auth.AuthController) {
	router.MethodNotAllowed(methodNotAllowed(logger, constvars.MethodPost))

	router.Post("/login", authController.Login)
}
