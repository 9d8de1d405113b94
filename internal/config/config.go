package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort  string `env:"APP_PORT" envDefault:"3000"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	RedditClientID     string `env:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `env:"REDDIT_CLIENT_SECRET"`
	RedditRedirectURI  string `env:"REDDIT_REDIRECT_URI" envDefault:"http://localhost:3000/api/auth/reddit/callback"`
	RedditUserAgent    string `env:"REDDIT_USER_AGENT" envDefault:"web:product-review-aggregator:v1.0"`

	// When RedisAddr is empty, sessions live entirely in client cookies.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load parses the configuration from environment variables.
// Missing Reddit credentials are not fatal here: the token exchange
// reports them per call, so the rest of the service stays usable.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
