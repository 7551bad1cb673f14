package healthchecks

import (
	"context"
	"net/http"
	"time"

	v1 "github.com/5urf/carrot-challenge/store/v1"
	"github.com/alexliesenfeld/health"
	"github.com/redis/go-redis/v9"
)

func NewHealthChecksAPI(pgPing v1.PostgresPing, redisClient *redis.Client) http.HandlerFunc {
	cacheOpt := health.WithCacheDuration(time.Second * 30)
	timeoutOpt := health.WithTimeout(time.Second * 10)
	dbHealthOpt := health.WithCheck(health.Check{
		Name:               "database",
		Check:              pgPing.Ping,
		Timeout:            time.Second * 5,
		MaxContiguousFails: 3,
	})

	opts := []health.CheckerOption{
		cacheOpt,
		timeoutOpt,
		dbHealthOpt,
	}

	if redisClient != nil {
		opts = append(opts, health.WithCheck(health.Check{
			Name: "cache",
			Check: func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
			Timeout:            time.Second * 5,
			MaxContiguousFails: 3,
		}))
	}

	checker := health.NewChecker(opts...)

	return health.NewHandler(checker)
}
