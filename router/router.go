package router

import (
	"net/http"

	"accountd/app/controllers"
	"accountd/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, userCtrl *controllers.UserController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public auth endpoints
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)
	mux.HandleFunc("POST /api/auth/logout", authCtrl.Logout)
	mux.HandleFunc("GET /api/auth/me", authCtrl.Me)

	// user management (admin only)
	mux.Handle("GET /api/users", mw.RequireAdmin(http.HandlerFunc(userCtrl.List)))
	mux.Handle("POST /api/users", mw.RequireAdmin(http.HandlerFunc(userCtrl.Create)))
	mux.Handle("PATCH /api/users/{id}/status", mw.RequireAdmin(http.HandlerFunc(userCtrl.UpdateStatus)))

	return mux
}
