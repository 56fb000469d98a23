package entity

type Address struct {
	AddressLine string
	Apartment   string
	City        string
	Subdivision string
	PostalCode  string
	Country     string
}

func (a Address) Empty() bool {
	return a == Address{}
}
