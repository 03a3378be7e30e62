package config

type Config struct {
	// Префикс номера заказа в документе склада
	OrderPrefix string
	// Код статуса нового заказа в схеме склада
	OrderStatusCode int
	// Метка склада назначения
	Warehouse string `validate:"required"`
	// Дописывать вторую строку адреса в дополнение к номеру дома
	Line2ToAddition bool
	// Дублировать адрес доставки в основной адресный блок
	MirrorInvoiceAddress bool
	// Таблица соответствия название товара - артикул склада
	Articles map[string]string
}
