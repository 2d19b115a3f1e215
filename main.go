package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"voltstore/config"
	"voltstore/handlers"
	"voltstore/repository"
	"voltstore/services"
	"voltstore/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	snapshotRepo, sessionRepo := buildRepositories(cfg)

	st := store.New()
	snap, exists, err := snapshotRepo.Load()
	if err != nil {
		logrus.WithError(err).Fatal("snapshot load failed")
	}
	if exists {
		st.Restore(snap)
		logrus.Info("state restored from snapshot")
	} else if cfg.SeedDemoData {
		st = store.NewSeeded()
		logrus.Info("fresh store seeded with demo catalog")
	}

	uS := services.NewUserService(st, snapshotRepo, sessionRepo)
	if err := uS.EnsureDemoUsers(); err != nil {
		logrus.WithError(err).Fatal("demo user seeding failed")
	}

	hp := handlers.HandlerParams{
		UsrService: uS,
		PrdService: services.NewProductService(st, snapshotRepo),
		CrtService: services.NewCartService(st, snapshotRepo),
		ColService: services.NewCollectionService(st, snapshotRepo),
		OrdService: services.NewOrderService(st, snapshotRepo),
		SetService: services.NewSettingsService(st, snapshotRepo),
		WshService: services.NewWishlistService(st, snapshotRepo),
	}
	ha := handlers.NewHandler(hp)

	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)
	subAuth := router.NewRoute().Subrouter()
	subAuth.Use(ha.AuthMiddleware)
	subAdmin := router.NewRoute().Subrouter()
	subAdmin.Use(ha.AdminAuthMiddleware)

	router.HandleFunc("/", ha.Welcome)
	router.HandleFunc("/auth/register", ha.Register).Methods("POST")
	router.HandleFunc("/auth/login", ha.Login).Methods("POST")
	router.HandleFunc("/auth/logout", ha.Logout).Methods("POST")
	subAuth.HandleFunc("/auth/me", ha.Me).Methods("GET")

	router.HandleFunc("/products", ha.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", ha.GetProduct).Methods("GET")
	router.HandleFunc("/products/slug/{slug}", ha.GetProductBySlug).Methods("GET")
	subAdmin.HandleFunc("/products", ha.CreateProduct).Methods("POST")
	subAdmin.HandleFunc("/products/{id:[0-9]+}", ha.UpdateProduct).Methods("PATCH")
	subAdmin.HandleFunc("/products/{id:[0-9]+}", ha.DeleteProduct).Methods("DELETE")
	router.HandleFunc("/categories", ha.GetCategories).Methods("GET")

	router.HandleFunc("/collections", ha.GetCollections).Methods("GET")
	router.HandleFunc("/collections/{id:[0-9]+}", ha.GetCollection).Methods("GET")
	router.HandleFunc("/collections/{id:[0-9]+}/products", ha.GetCollectionProducts).Methods("GET")
	subAdmin.HandleFunc("/collections", ha.CreateCollection).Methods("POST")
	subAdmin.HandleFunc("/collections/{id:[0-9]+}", ha.UpdateCollection).Methods("PATCH")
	subAdmin.HandleFunc("/collections/{id:[0-9]+}", ha.DeleteCollection).Methods("DELETE")

	router.HandleFunc("/cart", ha.GetCart).Methods("GET")
	router.HandleFunc("/cart", ha.AddToCart).Methods("POST")
	router.HandleFunc("/cart", ha.RemoveFromCart).Methods("DELETE")
	router.HandleFunc("/cart/quantity", ha.UpdateQuantity).Methods("POST")
	router.HandleFunc("/cart/clear", ha.ClearCart).Methods("POST")
	router.HandleFunc("/cart/totals", ha.GetTotals).Methods("GET")
	router.HandleFunc("/cart/coupon", ha.ApplyCoupon).Methods("POST")
	router.HandleFunc("/cart/coupon", ha.RemoveCoupon).Methods("DELETE")
	subAuth.HandleFunc("/checkout", ha.Checkout).Methods("POST")

	router.HandleFunc("/wishlist", ha.GetWishlist).Methods("GET")
	router.HandleFunc("/wishlist/{id:[0-9]+}", ha.AddToWishlist).Methods("POST")
	router.HandleFunc("/wishlist/{id:[0-9]+}", ha.RemoveFromWishlist).Methods("DELETE")

	router.HandleFunc("/settings", ha.GetSettings).Methods("GET")
	subAdmin.HandleFunc("/settings", ha.UpdateSettings).Methods("PUT")
	subAdmin.HandleFunc("/orders", ha.GetOrders).Methods("GET")
	subAdmin.HandleFunc("/orders/{id:[0-9]+}", ha.GetOrderById).Methods("GET")
	subAdmin.HandleFunc("/orders/{id:[0-9]+}/status", ha.SetOrderStatus).Methods("POST")
	subAdmin.HandleFunc("/customers", ha.GetCustomers).Methods("GET")
	subAdmin.HandleFunc("/dashboard", ha.GetStats).Methods("GET")

	logrus.WithField("addr", cfg.Addr).Info("starting server...")
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func buildRepositories(cfg config.Config) (repository.SnapshotRepository, repository.SessionRepository) {
	var snapshotRepo repository.SnapshotRepository
	var err error

	switch cfg.SnapshotBackend {
	case "sqlite":
		var db *sql.DB
		db, err = sql.Open("sqlite3", cfg.SqlitePath)
		if err == nil {
			snapshotRepo, err = repository.NewSqliteSnapshotRepository(db, cfg.SnapshotKey)
		}
	case "postgres":
		connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.DatabaseUser, cfg.DatabasePassword, cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseName)
		var db *sql.DB
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			snapshotRepo, err = repository.NewPostgresSnapshotRepository(db, cfg.SnapshotKey)
		}
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisHost + ":" + cfg.RedisPort})
		snapshotRepo, err = repository.NewRedisSnapshotRepository(rdb, context.Background(), cfg.SnapshotKey)
	case "memory":
		snapshotRepo = repository.NewMemorySnapshotRepository()
	default:
		logrus.Fatalf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
	if err != nil {
		logrus.WithError(err).Fatalf("%s snapshot repository init failed", cfg.SnapshotBackend)
	}
	logrus.Infof("%s snapshot repository ready", cfg.SnapshotBackend)

	// Sessions go to redis when one is configured, otherwise stay in-process.
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisHost + ":" + cfg.RedisPort})
		sessionRepo, err := repository.NewRedisSessionRepository(rdb, context.Background())
		if err != nil {
			logrus.WithError(err).Fatal("redis session repository init failed")
		}
		logrus.Info("redis session repository ready")
		return snapshotRepo, sessionRepo
	}
	return snapshotRepo, repository.NewMemorySessionRepository()
}
