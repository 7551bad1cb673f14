package server

import (
	"fmt"

	"github.com/5urf/carrot-challenge/account"
	"github.com/5urf/carrot-challenge/cache"
	"github.com/5urf/carrot-challenge/config"
	healthchecks "github.com/5urf/carrot-challenge/health-checks"
	"github.com/5urf/carrot-challenge/router"
	store_v1 "github.com/5urf/carrot-challenge/store/v1"
	"github.com/5urf/carrot-challenge/store/v1/sessions"
	"github.com/5urf/carrot-challenge/store/v1/users"
	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/fatih/color"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
)

func NewServerCommand() *cli.Command {
	return &cli.Command{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "start the account service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-file",
				Value:   "$HOME/.carrot/config.yaml",
				Usage:   "Path to the config file",
				Aliases: []string{"c"},
			},
		},
		Action: RunAccountServer,
	}
}

func RunAccountServer(ctx *cli.Context) error {
	cfg, err := config.ReadYamlConfig(ctx.String("config-file"))
	if err != nil {
		return fmt.Errorf(color.RedString("error reading cfg file: %s", err.Error()))
	}

	logger := telemetry.ZLogger(cfg.Environment, cfg.Telemetry)
	e := echo.New()

	rawDB := store_v1.NewDB(cfg.StoreConfig, cfg.Environment)
	usersStore := users.NewStore(rawDB, logger)
	sessionsStore := sessions.NewStore(rawDB)

	var redisClient *redis.Client
	notifier := cache.NewNoopNotifier(logger)
	if cfg.CacheConfig.Enabled {
		redisClient, err = cache.Dial(cfg.CacheConfig)
		if err != nil {
			return fmt.Errorf(color.RedString("error connecting to cache backend: %s", err.Error()))
		}
		notifier = cache.NewRedisNotifier(redisClient, cfg.CacheConfig.Channel, logger)
	}

	accountsAPI := account.New(cfg, usersStore, sessionsStore, notifier, logger)
	healthCheckHandler := healthchecks.NewHealthChecksAPI(&store_v1.DBPinger{DB: rawDB}, redisClient)

	router.Register(cfg, e, accountsAPI)
	router.RegisterHealthCheckEndpoint(e, healthCheckHandler)

	return buildHTTPServer(cfg, e)
}

func buildHTTPServer(cfg *config.CarrotConfig, e *echo.Echo) error {
	color.Green("Environment: %s", cfg.Environment)
	color.Green("Service Endpoint: %s\n", cfg.Endpoint())

	if cfg.HTTP.TLS.Enabled {
		return e.StartTLS(cfg.HTTP.Address(), cfg.HTTP.TLS.PubKey, cfg.HTTP.TLS.PrivateKey)
	}

	return e.Start(cfg.HTTP.Address())
}
