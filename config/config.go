package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Admin struct {
	Username string
	Password string
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Admin Admin
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.db.driver", "sqlite")
	v.SetDefault("server.db.path", "accountd.db")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "accountd")
	v.SetDefault("server.admin.username", "admin")
	v.SetDefault("server.admin.password", "admin123")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Path:   v.GetString("server.db.path"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
		},
		Admin: Admin{Username: v.GetString("server.admin.username"), Password: v.GetString("server.admin.password")},
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	return cfg, nil
}
