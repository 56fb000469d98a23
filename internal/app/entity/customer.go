package entity

type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
}
