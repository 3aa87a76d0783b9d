package dto

import "time"

// CreateCustomerRequest is the payload for creating a customer
type CreateCustomerRequest struct {
	FirstName    string    `json:"firstName" validate:"required"`
	LastName     string    `json:"lastName"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2"`
	AddressLine3 string    `json:"addressLine3"`
	Pincode      string    `json:"pincode" validate:"omitempty,pincode"`
	PhoneNumber  string    `json:"phoneNumber"`
	EmailAddress string    `json:"emailAddress" validate:"omitempty,email"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	CustomerID   int       `json:"customerId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2"`
	AddressLine3 string    `json:"addressLine3"`
	Pincode      string    `json:"pincode"`
	PhoneNumber  string    `json:"phoneNumber"`
	EmailAddress string    `json:"emailAddress"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
}
