package app

import (
	"github.com/rs/zerolog/log"

	"github.com/icycoldveins/product-review-aggregator/internal/config"
	"github.com/icycoldveins/product-review-aggregator/internal/redis"
)

type Infra struct {
	// Redis is nil when no address is configured; sessions then live
	// entirely in client cookies.
	Redis *redis.Client
}

func setupInfra(cfg config.Config) (*Infra, error) {
	if cfg.RedisAddr == "" {
		return &Infra{}, nil
	}

	client, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("redis session store ready")

	return &Infra{Redis: client}, nil
}
