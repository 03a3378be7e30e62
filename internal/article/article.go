package article

import (
	"strings"

	"github.com/iurnickita/orderbridge/internal/model"
)

// FallbackCode подставляется, когда у позиции нет ни артикула, ни названия
const FallbackCode = "UNKNOWN"

// Resolver сопоставляет название товара с артикулом склада.
// Таблица заполняется один раз при старте и дальше не меняется
type Resolver struct {
	codes map[string]string
}

func NewResolver(mapping map[string]string) *Resolver {
	codes := make(map[string]string, len(mapping))
	for title, code := range mapping {
		codes[normalize(title)] = code
	}
	return &Resolver{codes: codes}
}

// Resolve возвращает артикул и EAN для позиции заказа.
// Для известного названия артикул и EAN совпадают - так принято у склада.
// Иначе подставляется SKU, затем название, затем FallbackCode;
// EAN в этом случае остаётся пустым. Отсутствие названия в таблице -
// ожидаемый случай, не ошибка
func (r *Resolver) Resolve(item model.LineItem) (articleCode string, eanCode string) {
	if code, ok := r.codes[normalize(item.Title)]; ok {
		return code, code
	}

	if item.SKU != "" {
		return item.SKU, ""
	}
	if item.Title != "" {
		return item.Title, ""
	}
	return FallbackCode, ""
}

func normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
