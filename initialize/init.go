package initialize

import (
	"fmt"
	"net/http"

	"accountd/app/controllers"
	"accountd/app/db"
	"accountd/app/middleware"
	"accountd/app/models"
	"accountd/app/repo"
	"accountd/app/services"
	"accountd/config"
	"accountd/global"
	"accountd/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Auth    *controllers.AuthController
	UserMgr *controllers.UserController
	Users   *services.UserService
	Tokens  *services.AuthService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Path: cfg.DB.Path, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Token{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	tokenRepo := repo.NewTokenRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(tokenRepo)
	if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	// Controllers
	authCtrl := controllers.NewAuthController(userSvc, authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	mw := &middleware.Auth{Tokens: authSvc}

	// Router
	h := router.NewRouter(authCtrl, userCtrl, mw)
	// Wrap with logging middleware
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, UserMgr: userCtrl, Users: userSvc, Tokens: authSvc}, nil
}
