package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"

	domcart "github.com/primeship/primeship/internal/domain/cart"
	domcategory "github.com/primeship/primeship/internal/domain/category"
	domorder "github.com/primeship/primeship/internal/domain/order"
	domproduct "github.com/primeship/primeship/internal/domain/product"
	domuser "github.com/primeship/primeship/internal/domain/user"
	domrole "github.com/primeship/primeship/internal/domain/userrole"
	"github.com/primeship/primeship/internal/infra/config"
	"github.com/primeship/primeship/internal/infra/logging"
	"github.com/primeship/primeship/internal/infra/persistence/memory"
	"github.com/primeship/primeship/internal/infra/persistence/mysql"
	"github.com/primeship/primeship/internal/infra/security"
	httpapi "github.com/primeship/primeship/internal/interface/http"
	authuc "github.com/primeship/primeship/internal/usecase/auth"
	cartuc "github.com/primeship/primeship/internal/usecase/cart"
	categoryuc "github.com/primeship/primeship/internal/usecase/category"
	checkoutuc "github.com/primeship/primeship/internal/usecase/checkout"
	orderuc "github.com/primeship/primeship/internal/usecase/order"
	productuc "github.com/primeship/primeship/internal/usecase/product"
	selleruc "github.com/primeship/primeship/internal/usecase/seller"
	useruc "github.com/primeship/primeship/internal/usecase/user"
	userroleuc "github.com/primeship/primeship/internal/usecase/userrole"
)

type repositories struct {
	users      domuser.Repository
	roles      domrole.Repository
	categories domcategory.Repository
	products   domproduct.Repository
	carts      domcart.Repository
	orders     domorder.Repository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		charmlog.Fatal("invalid configuration", "err", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hasher := security.NewBcryptService(cfg.BcryptCost)
	tokens := security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	var repos repositories
	var db *sql.DB
	switch cfg.StorageDriver {
	case config.StorageMySQL:
		db, err = sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			logger.Fatal("open mysql", "err", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		repos = repositories{
			users:      mysql.NewUserRepository(db),
			roles:      mysql.NewUserRoleRepository(db),
			categories: mysql.NewCategoryRepository(db),
			products:   mysql.NewProductRepository(db),
			carts:      mysql.NewCartRepository(db),
			orders:     mysql.NewOrderRepository(db),
		}
	default:
		stores := memory.NewStores()
		if cfg.SeedDemo {
			if err := stores.SeedDemo(ctx, hasher); err != nil {
				logger.Fatal("seed demo data", "err", err)
			}
			logger.Info("demo catalog seeded")
		}
		repos = repositories{
			users:      stores.Users,
			roles:      stores.Roles,
			categories: stores.Categories,
			products:   stores.Products,
			carts:      stores.Carts,
			orders:     stores.Orders,
		}
	}

	cartSvc := cartuc.NewService(repos.carts, repos.products)

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:     authuc.NewService(repos.users, hasher, tokens),
		UserService:     useruc.NewService(repos.users, hasher),
		UserRoleService: userroleuc.NewService(repos.roles, repos.users),
		CategoryService: categoryuc.NewService(repos.categories, repos.products),
		ProductService:  productuc.NewService(repos.products, repos.categories),
		CartService:     cartSvc,
		CheckoutService: checkoutuc.NewService(cartSvc, repos.orders, repos.products),
		OrderService:    orderuc.NewService(repos.orders),
		SellerService:   selleruc.NewService(repos.products, repos.orders),
		TokenService:    tokens,
		Logger:          logger,
	})

	router := api.Router()
	if db != nil {
		router.Get("/health/mysql", mysqlHealth(db))
	}
	if cfg.PostgresDSN != "" {
		router.Get("/health/pg", pgHealth(cfg.PostgresDSN))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", "err", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}

func mysqlHealth(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "mysql ping error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write([]byte("mysql ok"))
	}
}

func pgHealth(dsn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			http.Error(w, "pg connect error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer conn.Close(ctx)
		if err := conn.Ping(ctx); err != nil {
			http.Error(w, "pg ping error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write([]byte("pg ok"))
	}
}
