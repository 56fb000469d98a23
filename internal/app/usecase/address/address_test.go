package address

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
)

func TestCompare(t *testing.T) {
	base := entity.Address{
		AddressLine: "235 W 23rd St",
		Apartment:   "4B",
		City:        "New York",
		Subdivision: "NY",
		PostalCode:  "10011",
		Country:     "US",
	}

	tests := []struct {
		name   string
		first  entity.Address
		second entity.Address

		want bool
	}{
		{
			name:   "identical addresses",
			first:  base,
			second: base,

			want: true,
		},
		{
			name:  "case and whitespace differences are cosmetic",
			first: base,
			second: entity.Address{
				AddressLine: "235  w 23RD st",
				Apartment:   "4b",
				City:        " new york ",
				Subdivision: "ny",
				PostalCode:  "10011",
				Country:     "us",
			},

			want: true,
		},
		{
			name:  "differing apartment unit does not match",
			first: base,
			second: entity.Address{
				AddressLine: "235 W 23rd St",
				Apartment:   "5C",
				City:        "New York",
				Subdivision: "NY",
				PostalCode:  "10011",
				Country:     "US",
			},

			want: false,
		},
		{
			name:  "differing postal code does not match",
			first: base,
			second: entity.Address{
				AddressLine: "235 W 23rd St",
				Apartment:   "4B",
				City:        "New York",
				Subdivision: "NY",
				PostalCode:  "10012",
				Country:     "US",
			},

			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Compare(test.first, test.second))
		})
	}
}

func TestBillingSameAsShipping(t *testing.T) {
	shipping := entity.Address{
		AddressLine: "1 Main St",
		City:        "Springfield",
		PostalCode:  "62704",
		Country:     "US",
	}

	assert.True(t, BillingSameAsShipping(shipping, entity.Address{}))
	assert.True(t, BillingSameAsShipping(shipping, shipping))

	other := shipping
	other.Apartment = "2A"
	assert.False(t, BillingSameAsShipping(shipping, other))
}
