package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Driver   string // "sqlite" or "mysql"
	Path     string // sqlite file
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

func Connect(cfg Config) (*gorm.DB, error) {
	opts := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch cfg.Driver {
	case "", "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), opts)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), opts)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}
