package main

import (
	"flag"

	"accountd/global"
	"accountd/initialize"
	"accountd/server"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config file")
		host       = flag.String("host", "", "Listen host (overrides config)")
		port       = flag.Int("port", 0, "Listen port (overrides config)")
	)
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	listenHost := app.Cfg.HTTP.Host
	if *host != "" {
		listenHost = *host
	}
	listenPort := app.Cfg.HTTP.Port
	if *port != 0 {
		listenPort = *port
	}

	global.Logger.Info().Str("host", listenHost).Int("port", listenPort).Msg("listening")
	if err := server.StartHTTPServer(listenHost, listenPort, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
