package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

// アクセストークンの有効期限
const tokenTTL = 24 * time.Hour

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (i *jwtIssuer) Issue(userID int64, email string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(i.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

func main() {
	// .envは無ければ無いで良い（本番は環境変数直渡し）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.GoEnv)

	// DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	if err := db.Ping(context.Background(), gormDB); err != nil {
		log.Fatal().Err(err).Msg("database unreachable")
	}
	log.Info().Str("db", cfg.DBName).Msg("database connected")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := db.SeedProducts(context.Background(), gormDB); err != nil {
		log.Fatal().Err(err).Msg("catalog seed failed")
	}

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// JWT issuer
	issuer := &jwtIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    tokenTTL,
	}

	// Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, validator.NewAuthValidator(userRepo), issuer, cfg.BcryptCost)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager)

	// Handler生成
	deps := server.Deps{
		JWTSecret: cfg.JWTSecret,
		Users:     userRepo,
		Auth:      handler.NewAuthHandler(authUC),
		Product:   handler.NewProductHandler(productUC),
		Cart:      handler.NewCartHandler(cartUC),
		Order:     handler.NewOrderHandler(orderUC),
		Health:    handler.NewHealthHandler(gormDB, log),
	}

	// Server起動
	addr := ":" + cfg.Port

	srv := server.New(log, deps)
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
