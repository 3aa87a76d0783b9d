package models

import (
	"errors"
	"strings"
	"time"
)

// Customer holds personal and contact details for a bank customer.
// A customer is removed by clearing IsActive; lookups only return
// active rows.
type Customer struct {
	CustomerID   int       `gorm:"primaryKey;autoIncrement" json:"customerId"`
	FirstName    string    `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(50)" json:"lastName"`
	AddressLine1 string    `gorm:"type:varchar(100)" json:"addressLine1"`
	AddressLine2 string    `gorm:"type:varchar(100)" json:"addressLine2"`
	AddressLine3 string    `gorm:"type:varchar(100)" json:"addressLine3"`
	Pincode      string    `gorm:"type:varchar(10)" json:"pincode"`
	PhoneNumber  string    `gorm:"type:varchar(15)" json:"phoneNumber"`
	EmailAddress string    `gorm:"type:varchar(100)" json:"emailAddress"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	City         string    `gorm:"type:varchar(50)" json:"city"`
	Country      string    `gorm:"type:varchar(50)" json:"country"`
	IsActive     bool      `gorm:"not null" json:"isActive"`
	UserID       int       `gorm:"index" json:"userId"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName returns the table name for Customer
func (c *Customer) TableName() string {
	return "customers"
}

// CustomerUpdate carries a partial update. Nil or blank fields leave the
// stored value untouched.
type CustomerUpdate struct {
	FirstName    *string    `json:"firstName,omitempty"`
	LastName     *string    `json:"lastName,omitempty"`
	AddressLine1 *string    `json:"addressLine1,omitempty"`
	AddressLine2 *string    `json:"addressLine2,omitempty"`
	AddressLine3 *string    `json:"addressLine3,omitempty"`
	Pincode      *string    `json:"pincode,omitempty"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	EmailAddress *string    `json:"emailAddress,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	City         *string    `json:"city,omitempty"`
	Country      *string    `json:"country,omitempty"`
}

// Validate validates the customer fields
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return errors.New("first name is required")
	}

	return nil
}
