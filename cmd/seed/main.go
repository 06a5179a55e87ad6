package main

import (
	"context"
	"flag"

	"github.com/minishop/internal/config"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/models"
	"github.com/minishop/internal/repository"
	"github.com/minishop/internal/service"
)

// demoProducts 示例商品，A=10.00 与 B=5.50 对应结算示例
var demoProducts = []struct {
	name  string
	price string
}{
	{name: "Product A", price: "10.00"},
	{name: "Product B", price: "5.50"},
	{name: "Product C", price: "99.99"},
}

func main() {
	force := flag.Bool("force", false, "商品表非空时仍然写入示例数据")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.LogLevel, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	})
	if err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	products := service.NewProductService(repository.NewProductRepository(db), nil)
	existing, err := products.ListProducts(ctx)
	if err != nil {
		stdLog.Fatalf("Failed to list products: %v", err)
	}
	if len(existing) > 0 && !*force {
		logger.Infow("seed_skipped", "existing_products", len(existing))
		return
	}

	for _, item := range demoProducts {
		price, err := models.NewMoneyFromString(item.price)
		if err != nil {
			stdLog.Fatalf("Invalid seed price %s: %v", item.price, err)
		}
		product, err := products.AddProduct(ctx, service.CreateProductInput{Name: item.name, Price: price})
		if err != nil {
			stdLog.Fatalf("Failed to create product %s: %v", item.name, err)
		}
		logger.Infow("seed_product_created", "product_id", product.ID, "name", product.Name, "price", product.Price.String())
	}
}
