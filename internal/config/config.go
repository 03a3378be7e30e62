package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	handlerConfig "github.com/iurnickita/orderbridge/internal/handler/config"
	loggerConfig "github.com/iurnickita/orderbridge/internal/logger/config"
	registryConfig "github.com/iurnickita/orderbridge/internal/registry/config"
	serviceConfig "github.com/iurnickita/orderbridge/internal/service/config"
	transformConfig "github.com/iurnickita/orderbridge/internal/transform/config"
)

type Config struct {
	Handler   handlerConfig.Config
	Logger    loggerConfig.Config
	Registry  registryConfig.Config
	Service   serviceConfig.Config
	Transform transformConfig.Config
}

// GetConfig читает конфигурацию один раз при старте процесса.
// Приоритет: переменные окружения ORDERBRIDGE_*, затем config.toml,
// затем значения по умолчанию. После загрузки конфигурация не меняется
func GetConfig() (Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		// файла может и не быть, достаточно окружения
	}

	v.SetEnvPrefix("ORDERBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("handler.server_addr", ":8080")
	v.SetDefault("handler.signature_header", "X-Hmac-Sha256")
	v.SetDefault("log.level", "info")
	v.SetDefault("relay.gate_mode", serviceConfig.GateModeStatus)
	v.SetDefault("relay.qualifying_statuses", []string{"in progress", "open", "pending", "fulfilled"})
	v.SetDefault("relay.order_prefix", "WEB")
	v.SetDefault("relay.order_status_code", 1)
	v.SetDefault("warehouse.timeout", 10*time.Second)
	v.SetDefault("shop.timeout", 10*time.Second)

	cfg := Config{
		Handler: handlerConfig.Config{
			ServerAddr:      v.GetString("handler.server_addr"),
			SignatureHeader: v.GetString("handler.signature_header"),
			WebhookSecret:   v.GetString("handler.webhook_secret"),
		},
		Logger: loggerConfig.Config{
			LogLevel: v.GetString("log.level"),
		},
		Registry: registryConfig.Config{
			DatabaseDSN: v.GetString("registry.database_dsn"),
		},
		Service: serviceConfig.Config{
			GateMode:           v.GetString("relay.gate_mode"),
			QualifyingStatuses: v.GetStringSlice("relay.qualifying_statuses"),
			MarkBeforeSubmit:   v.GetBool("relay.mark_before_submit"),
			Warehouse: serviceConfig.WarehouseConfig{
				BaseURL:  v.GetString("warehouse.base_url"),
				Username: v.GetString("warehouse.username"),
				Password: v.GetString("warehouse.password"),
				Timeout:  v.GetDuration("warehouse.timeout"),
			},
			Shop: serviceConfig.ShopConfig{
				BaseURL:     v.GetString("shop.base_url"),
				AccessToken: v.GetString("shop.access_token"),
				Timeout:     v.GetDuration("shop.timeout"),
			},
		},
		Transform: transformConfig.Config{
			OrderPrefix:          v.GetString("relay.order_prefix"),
			OrderStatusCode:      v.GetInt("relay.order_status_code"),
			Warehouse:            v.GetString("relay.warehouse"),
			Line2ToAddition:      v.GetBool("relay.line2_to_addition"),
			MirrorInvoiceAddress: v.GetBool("relay.mirror_invoice_address"),
			Articles:             v.GetStringMapString("relay.articles"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}
