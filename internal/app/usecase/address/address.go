package address

import (
	"strings"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
)

// Normalize folds case and collapses whitespace so that cosmetic differences
// between vendor address records do not affect comparison.
func Normalize(address entity.Address) entity.Address {
	return entity.Address{
		AddressLine: normalizeField(address.AddressLine),
		Apartment:   normalizeField(address.Apartment),
		City:        normalizeField(address.City),
		Subdivision: normalizeField(address.Subdivision),
		PostalCode:  normalizeField(address.PostalCode),
		Country:     normalizeField(address.Country),
	}
}

// Compare reports whether two addresses match after normalization. Every
// field participates, including the apartment unit.
func Compare(first, second entity.Address) bool {
	return Normalize(first) == Normalize(second)
}

// BillingSameAsShipping decides whether the billing address can be rendered
// as "same as shipping". An empty billing address falls back to shipping and
// counts as the same.
func BillingSameAsShipping(shipping, billing entity.Address) bool {
	if billing.Empty() {
		return true
	}

	return Compare(shipping, billing)
}

func normalizeField(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
