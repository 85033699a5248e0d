package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	adapthttp "github.com/Zhouyuxin4/Scalor/internal/adapter/http"
	"github.com/Zhouyuxin4/Scalor/internal/adapter/memory"
	"github.com/Zhouyuxin4/Scalor/internal/adapter/postgres"
	"github.com/Zhouyuxin4/Scalor/internal/app"
	"github.com/Zhouyuxin4/Scalor/internal/catalog"
	"github.com/Zhouyuxin4/Scalor/internal/domain"
	"github.com/Zhouyuxin4/Scalor/internal/watch"
)

func main() {
	logger := newLogger(env("ENV", "development"))
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	addr := env("ADDR", ":8080")
	sessionTTL, err := time.ParseDuration(env("SESSION_TTL", "24h"))
	if err != nil {
		sugar.Fatalf("invalid SESSION_TTL: %v", err)
	}

	var (
		productRepo domain.ProductRepository
		recordRepo  domain.PriceRecordRepository
		storeRepo   domain.StoreRepository
		listRepo    domain.ShoppingListRepository
		userRepo    domain.UserRepository
		sessionRepo domain.SessionRepository
	)
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			sugar.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		productRepo, recordRepo, storeRepo, listRepo, userRepo = db, db, db, db, db
		sessionRepo = postgres.NewSessionRepo(db)
		sugar.Info("using postgres storage")
	} else {
		db := memory.New()
		productRepo, recordRepo, storeRepo, listRepo, userRepo = db, db, db, db, db
		sessionRepo = memory.NewSessionRepo(db)
		sugar.Warn("DATABASE_URL not set, using in-memory storage")
	}

	cat := catalog.New()
	hub := watch.NewHub()

	productSvc := app.NewProductService(productRepo, recordRepo, cat)
	purchaseSvc := app.NewPurchaseService(productSvc, productRepo, recordRepo, storeRepo, hub)
	historySvc := app.NewHistoryService(productRepo, recordRepo)
	storeSvc := app.NewStoreService(storeRepo)
	shoppingSvc := app.NewShoppingListService(listRepo, storeRepo)
	prefillSvc := app.NewPrefillService()
	authSvc := app.NewAuthService(userRepo, sessionRepo, sessionTTL)

	go sweepSessions(authSvc, sugar)

	h := adapthttp.New(authSvc, purchaseSvc, productSvc, historySvc, storeSvc, shoppingSvc, prefillSvc, cat, logger).Handler()
	sugar.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatal(err)
	}
}

func newLogger(environment string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

// sweepSessions periodically purges expired sessions.
func sweepSessions(authSvc *app.AuthService, sugar *zap.SugaredLogger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := authSvc.CleanupExpiredSessions(ctx); err != nil {
			sugar.Warnf("session cleanup: %v", err)
		}
		cancel()
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
