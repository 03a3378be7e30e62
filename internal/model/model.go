package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Входящие события витрины

type ShopOrder struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	OrderNumber       int64         `json:"order_number"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	FulfillmentStatus string        `json:"fulfillment_status"`
	Customer          ShopCustomer  `json:"customer"`
	ShippingAddress   ShopAddress   `json:"shipping_address"`
	LineItems         []LineItem    `json:"line_items"`
	Fulfillments      []Fulfillment `json:"fulfillments"`
}

type ShopCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ShopAddress struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
}

// Цена приходит то строкой, то числом - json.Number принимает оба варианта
type LineItem struct {
	Title        string      `json:"title"`
	SKU          string      `json:"sku"`
	Quantity     int         `json:"quantity"`
	Price        json.Number `json:"price"`
	VariantTitle string      `json:"variant_title"`
}

type Fulfillment struct {
	ID      int64  `json:"id"`
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// Событие изменения отгрузки. Приходит отдельным вебхуком
// и не несёт полного заказа
type FulfillmentEvent struct {
	ID      int64  `json:"id"`
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// Исходящий документ заказа для склада.
// Схема склада требует наличия всех ключей, даже незаполненных

type WarehouseOrder struct {
	Reference       string               `json:"reference"`
	OrderNumber     string               `json:"order_number"`
	Status          int                  `json:"status"`
	CustomerName    string               `json:"customer_name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	Description     string               `json:"description"`
	Warehouse       string               `json:"warehouse"`
	Project         string               `json:"project"`
	LotNumber       string               `json:"lot_number"`
	HandlingDate    *string              `json:"handling_date"`
	Address         WarehouseAddress     `json:"address"`
	DeliveryAddress WarehouseAddress     `json:"delivery_address"`
	Lines           []WarehouseOrderLine `json:"lines"`
}

type WarehouseAddress struct {
	Name                string `json:"name"`
	Company             string `json:"company"`
	Street              string `json:"street"`
	HouseNumber         string `json:"house_number"`
	HouseNumberAddition string `json:"house_number_addition"`
	City                string `json:"city"`
	Zip                 string `json:"zip"`
	Country             string `json:"country"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
}

type WarehouseOrderLine struct {
	ArticleCode string          `json:"article_code"`
	EAN         string          `json:"ean"`
	PackingUnit int             `json:"packing_unit"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
