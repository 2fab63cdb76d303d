package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（3000）

	DatabaseURL string // あれば接続文字列を最優先で使う
	DBHost      string // DBホスト（localhost）
	DBPort      string // DBポート（5432）
	DBUser      string // DBユーザー
	DBPassword  string // DBパスワード
	DBName      string // DB名
	DBSSLMode   string // disable/require

	JWTSecret  string // JWT署名シークレット
	BcryptCost int    // パスワードハッシュのコスト（12）

	GoEnv string // dev/prod
}

// Loadは環境変数から設定を組み立てる。
// ローカルで動かしやすいように原則デフォルトあり。
func Load() (Config, error) {
	cost, err := atoiOr("BCRYPT_COST", 12)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  getenv("DB_PASSWORD", ""),
		DBName:      getenv("DB_NAME", "ecommerce_db"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),

		JWTSecret:  getenv("JWT_SECRET", "your-secret-key"),
		BcryptCost: cost,

		GoEnv: getenv("GO_ENV", "dev"),
	}

	// 本番でデフォルトシークレットのままは事故なので弾く
	if cfg.GoEnv == "prod" && cfg.JWTSecret == "your-secret-key" {
		return Config{}, fmt.Errorf("JWT_SECRET is required in prod")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
