package config

import "time"

// Режим проверки состояния заказа
const (
	// по общему статусу заказа
	GateModeStatus = "status"
	// по статусам вложенных отгрузок
	GateModeFulfillments = "fulfillments"
)

type Config struct {
	GateMode           string   `validate:"oneof=status fulfillments"`
	QualifyingStatuses []string `validate:"min=1"`
	// Исторический вариант: помечать заказ отправленным до вызова склада.
	// Исключает двойную отправку даже при сбое, но сбой тогда не повторить
	MarkBeforeSubmit bool

	Warehouse WarehouseConfig
	Shop      ShopConfig
}

type WarehouseConfig struct {
	BaseURL  string `validate:"required,url"`
	Username string `validate:"required"`
	Password string `validate:"required"`
	Timeout  time.Duration
}

// Доступ к витрине нужен только маршруту событий отгрузки
type ShopConfig struct {
	BaseURL     string `validate:"omitempty,url"`
	AccessToken string
	Timeout     time.Duration
}
