package main

import (
	"github.com/conectaedu/frontend/config"
	"github.com/conectaedu/frontend/portal"
	"github.com/conectaedu/frontend/routes"
	"github.com/conectaedu/frontend/session"
	"github.com/conectaedu/frontend/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	// Logged-out tokens are shared through Redis when it is configured
	holder := session.NewHolder(cfg.CookieSecure, session.NewRevocationList(utils.GetRedis()))
	api := portal.NewClient(cfg.APIBaseURL, nil)

	r := routes.SetupRouter(cfg, api, holder)

	utils.Sugar.Infof("Starting server on port %s (graceful), api=%s", cfg.AppPort, api.BaseURL())
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
