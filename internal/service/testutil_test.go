package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/minishop/internal/config"
	"github.com/minishop/internal/models"
	"github.com/minishop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	userRepo    *repository.GormUserRepository
	productRepo *repository.GormProductRepository
	cartRepo    *repository.GormCartRepository
	orderRepo   *repository.GormOrderRepository
	auth        *UserAuthService
	products    *ProductService
	carts       *CartService
	orders      *OrderService
}

func setupServiceTest(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "service-test-secret"
	cfg.JWT.ExpireHours = 2
	cfg.Security.PasswordPolicy.MinLength = 8

	env := &testEnv{
		db:          db,
		cfg:         cfg,
		userRepo:    repository.NewUserRepository(db),
		productRepo: repository.NewProductRepository(db),
		cartRepo:    repository.NewCartRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
	}
	env.auth = NewUserAuthService(cfg, env.userRepo)
	env.auth.bcryptCost = bcrypt.MinCost
	env.products = NewProductService(env.productRepo, nil)
	env.carts = NewCartService(env.cartRepo, env.productRepo)
	env.orders = NewOrderService(repository.NewTransactor(db), env.orderRepo, env.cartRepo, env.productRepo, nil, nil)
	return env
}

func money(t *testing.T, value string) models.Money {
	t.Helper()
	amount, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", value, err)
	}
	return models.NewMoneyFromDecimal(amount)
}

// exactMoney 保留原始精度，模拟未经取整的请求金额
func exactMoney(t *testing.T, value string) models.Money {
	t.Helper()
	amount, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", value, err)
	}
	return models.Money{Decimal: amount}
}
