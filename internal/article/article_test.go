package article

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iurnickita/orderbridge/internal/model"
)

func TestResolve(t *testing.T) {
	resolver := NewResolver(map[string]string{
		"Fruit Punch":    "8720892642707",
		"Blue Razzberry": "8720892642714",
	})

	// регистр и пробелы не влияют
	for _, title := range []string{"Fruit Punch", " fruit punch ", "FRUIT PUNCH"} {
		articleCode, eanCode := resolver.Resolve(model.LineItem{Title: title})
		require.Equal(t, "8720892642707", articleCode)
		require.Equal(t, "8720892642707", eanCode)
	}

	// неизвестное название: сначала SKU
	articleCode, eanCode := resolver.Resolve(model.LineItem{Title: "Sour Apple", SKU: "SA-100"})
	require.Equal(t, "SA-100", articleCode)
	require.Equal(t, "", eanCode)

	// без SKU: название как есть
	articleCode, eanCode = resolver.Resolve(model.LineItem{Title: "Sour Apple"})
	require.Equal(t, "Sour Apple", articleCode)
	require.Equal(t, "", eanCode)

	// совсем пустая позиция
	articleCode, eanCode = resolver.Resolve(model.LineItem{})
	require.Equal(t, FallbackCode, articleCode)
	require.Equal(t, "", eanCode)
}

func TestResolveEmptyMapping(t *testing.T) {
	resolver := NewResolver(nil)

	articleCode, eanCode := resolver.Resolve(model.LineItem{Title: "Blue Razzberry"})
	require.Equal(t, "Blue Razzberry", articleCode)
	require.Equal(t, "", eanCode)
}
