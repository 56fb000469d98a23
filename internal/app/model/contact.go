package model

type ContactResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName,omitempty"`
	LastName  string          `json:"lastName,omitempty"`
	Emails    []string        `json:"emails,omitempty"`
	Phones    []string        `json:"phones,omitempty"`
	Company   string          `json:"company,omitempty"`
	Orders    []ContactOrder  `json:"orders,omitempty"`
}

type ContactOrder struct {
	OrderID     string `json:"orderId"`
	Number      string `json:"number,omitempty"`
	DateCreated string `json:"dateCreated,omitempty"`
	Total       string `json:"total,omitempty"`
}
