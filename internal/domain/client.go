package domain

// Client is a customer/account record. All fields besides the id are
// free-text and mutable in place.
type Client struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"client_name"`
	Status      string `json:"status"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
