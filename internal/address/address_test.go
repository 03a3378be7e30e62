package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		street      string
		houseNumber string
		addition    string
	}{
		{
			name:        "улица и номер",
			line:        "Main Street 25",
			street:      "Main Street",
			houseNumber: "25",
		},
		{
			name:        "литера дома",
			line:        "Main Street 12A",
			street:      "Main Street",
			houseNumber: "12",
			addition:    "A",
		},
		{
			name:        "дополнение через дефис",
			line:        "Main Street 10-3",
			street:      "Main Street",
			houseNumber: "10",
			addition:    "-3",
		},
		{
			name:        "дополнение через дробь",
			line:        "Main Street 7/2",
			street:      "Main Street",
			houseNumber: "7",
			addition:    "/2",
		},
		{
			name:   "без номера дома",
			line:   "NoNumberHere",
			street: "NoNumberHere",
		},
		{
			name:        "улица из нескольких слов",
			line:        "Van der Berg Straat 101",
			street:      "Van der Berg Straat",
			houseNumber: "101",
		},
		{
			name:        "номер в середине не трогаем",
			line:        "5th Avenue Building 12",
			street:      "5th Avenue Building",
			houseNumber: "12",
		},
		{
			name:        "пробелы по краям",
			line:        "  Main Street 25  ",
			street:      "Main Street",
			houseNumber: "25",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			street, houseNumber, addition := Decompose(test.line)
			require.Equal(t, test.street, street)
			require.Equal(t, test.houseNumber, houseNumber)
			require.Equal(t, test.addition, addition)
		})
	}
}
