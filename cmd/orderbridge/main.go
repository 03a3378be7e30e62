package main

import (
	"log"

	"github.com/iurnickita/orderbridge/internal/article"
	"github.com/iurnickita/orderbridge/internal/config"
	"github.com/iurnickita/orderbridge/internal/handler"
	"github.com/iurnickita/orderbridge/internal/logger"
	"github.com/iurnickita/orderbridge/internal/registry"
	"github.com/iurnickita/orderbridge/internal/service"
	"github.com/iurnickita/orderbridge/internal/service/shopclient"
	"github.com/iurnickita/orderbridge/internal/service/warehouseclient"
	"github.com/iurnickita/orderbridge/internal/transform"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}

	sentRegistry, err := registry.NewRegistry(cfg.Registry)
	if err != nil {
		return err
	}

	articles := article.NewResolver(cfg.Transform.Articles)
	transformer := transform.NewTransformer(cfg.Transform, articles)
	warehouse := warehouseclient.NewWarehouseClient(
		cfg.Service.Warehouse.BaseURL,
		cfg.Service.Warehouse.Username,
		cfg.Service.Warehouse.Password,
		cfg.Service.Warehouse.Timeout)
	shop := shopclient.NewShopClient(
		cfg.Service.Shop.BaseURL,
		cfg.Service.Shop.AccessToken,
		cfg.Service.Shop.Timeout)

	relay := service.NewService(cfg.Service, sentRegistry, transformer, warehouse, shop, zaplog)

	return handler.Serve(cfg.Handler, relay, zaplog)
}
