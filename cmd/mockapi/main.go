package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/appybrain-client/internal/config"
	"github.com/MKhiriev/appybrain-client/internal/logger"
	"github.com/MKhiriev/appybrain-client/internal/mockapi"
	"github.com/MKhiriev/appybrain-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("appybrain-mockapi")

	flagCfg := config.BindFlags(pflag.CommandLine)
	users := pflag.StringArrayP("user", "u", []string{"demo@appybrain.dev:demo"}, "Seed account as email:password (repeatable)")
	pflag.Parse()

	cfg, err := config.GetStructuredConfig(flagCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	handler := mockapi.NewHandler(cfg.MockAPI, log)
	for _, u := range *users {
		email, password, ok := strings.Cut(u, ":")
		if !ok {
			log.Fatal().Str("user", u).Msg("seed account must be email:password")
		}
		if err = handler.AddUser(email, password, "", false); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("error adding seed account")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = mockapi.NewServer(cfg.MockAPI.Address, handler, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("mock api server error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
