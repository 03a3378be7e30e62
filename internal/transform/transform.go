package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iurnickita/orderbridge/internal/address"
	"github.com/iurnickita/orderbridge/internal/article"
	"github.com/iurnickita/orderbridge/internal/model"
	"github.com/iurnickita/orderbridge/internal/transform/config"
)

// Упаковка "поштучно"
const packingUnitEach = 1

// Transformer собирает складской документ из заказа витрины.
// Чистое преобразование, без ввода-вывода
type Transformer struct {
	cfg      config.Config
	articles *article.Resolver
}

func NewTransformer(cfg config.Config, articles *article.Resolver) *Transformer {
	return &Transformer{
		cfg:      cfg,
		articles: articles,
	}
}

func (t *Transformer) Transform(order model.ShopOrder) model.WarehouseOrder {
	delivery := t.deliveryAddress(order)

	doc := model.WarehouseOrder{
		Reference:    strconv.FormatInt(order.ID, 10),
		OrderNumber:  t.cfg.OrderPrefix + strconv.FormatInt(order.OrderNumber, 10),
		Status:       t.cfg.OrderStatusCode,
		CustomerName: customerName(order),
		Email:        order.Email,
		Phone:        order.Phone,
		Description:  fmt.Sprintf("Storefront order %s", order.Name),
		Warehouse:    t.cfg.Warehouse,
		// источника для этих полей нет, но склад требует сами ключи
		Project:         "",
		LotNumber:       "",
		HandlingDate:    nil,
		DeliveryAddress: delivery,
		Lines:           make([]model.WarehouseOrderLine, 0, len(order.LineItems)),
	}

	if t.cfg.MirrorInvoiceAddress {
		doc.Address = delivery
	}

	for _, item := range order.LineItems {
		doc.Lines = append(doc.Lines, t.line(item))
	}

	return doc
}

// Имя клиента: сначала имя и фамилия из карточки клиента,
// затем имя из адреса доставки, затем номер заказа витрины
func customerName(order model.ShopOrder) string {
	name := strings.TrimSpace(order.Customer.FirstName + " " + order.Customer.LastName)
	if name != "" {
		return name
	}
	if order.ShippingAddress.Name != "" {
		return order.ShippingAddress.Name
	}
	return order.Name
}

func (t *Transformer) deliveryAddress(order model.ShopOrder) model.WarehouseAddress {
	shipping := order.ShippingAddress

	street, houseNumber, addition := address.Decompose(shipping.Address1)
	if t.cfg.Line2ToAddition && shipping.Address2 != "" {
		addition = strings.TrimSpace(addition + " " + shipping.Address2)
	}

	country := shipping.CountryCode
	if country == "" {
		country = shipping.Country
	}

	return model.WarehouseAddress{
		Name:                shipping.Name,
		Company:             shipping.Company,
		Street:              street,
		HouseNumber:         houseNumber,
		HouseNumberAddition: addition,
		City:                shipping.City,
		Zip:                 shipping.Zip,
		Country:             country,
		Phone:               shipping.Phone,
		Email:               order.Email,
	}
}

func (t *Transformer) line(item model.LineItem) model.WarehouseOrderLine {
	articleCode, eanCode := t.articles.Resolve(item)

	// нечисловая или пустая цена превращается в ноль
	price, err := decimal.NewFromString(string(item.Price))
	if err != nil {
		price = decimal.Zero
	}

	quantity := item.Quantity
	if quantity < 0 {
		quantity = 0
	}

	description := item.Title
	if item.VariantTitle != "" {
		description = item.Title + " - " + item.VariantTitle
	}

	return model.WarehouseOrderLine{
		ArticleCode: articleCode,
		EAN:         eanCode,
		PackingUnit: packingUnitEach,
		Quantity:    quantity,
		Price:       price,
		Description: description,
	}
}
