package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	Port string `env:"PORT,default=8080"`

	// DATABASE_URL があれば個別のPOSTGRES_*より優先
	DatabaseURL      string `env:"DATABASE_URL"`
	PostgresUser     string `env:"POSTGRES_USER,default=postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,default=postgres"`
	PostgresDB       string `env:"POSTGRES_DB,default=mtg"`
	PostgresHost     string `env:"POSTGRES_HOST,default=localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT,default=5432"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE,default=disable"`

	JWTSecret   string `env:"JWT_SECRET,required"`
	JWTIssuer   string `env:"JWT_ISSUER,default=mtg-tracker"`
	JWTAudience string `env:"JWT_AUDIENCE,default=mtg-tracker-client"`

	// アクセストークンは短命、リフレッシュは30日
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,default=1h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL,default=720h"`

	GoEnv        string `env:"GO_ENV,default=dev"`
	FEURL        string `env:"FE_URL,default=http://localhost:3000"` // フロントURL（CORSで使う）
	CookieSecure bool   `env:"COOKIE_SECURE,default=true"`
}

// Loadは環境変数からConfigを組み立てる
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
