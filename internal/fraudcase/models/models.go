// Package models holds the fraud case payload sent to the fraud service, the
// local case record kept for each order, and the typed submission result.
package models

import (
	"time"

	"casebridge/pkg/optional"
)

// Address is the fraud service's address shape. Unit and coordinates have no
// source in the commerce order and are always nil.
type Address struct {
	StreetAddress string   `json:"streetAddress"`
	Unit          *string  `json:"unit"`
	City          string   `json:"city"`
	ProvinceCode  string   `json:"provinceCode"`
	PostalCode    string   `json:"postalCode"`
	CountryCode   string   `json:"countryCode"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// Card is payment instrument metadata for card-family payments.
type Card struct {
	CardholderName string  `json:"cardHolderName"`
	Last4          string  `json:"last4"`
	ExpiryMonth    int     `json:"expiryMonth"`
	ExpiryYear     int     `json:"expiryYear"`
	Hash           string  `json:"hash"`
	Bin            string  `json:"bin"`
	BillingAddress Address `json:"billingAddress"`
}

// Recipient is the shipping destination and its contact identity.
type Recipient struct {
	FullName          string  `json:"fullName"`
	ConfirmationEmail string  `json:"confirmationEmail"`
	ConfirmationPhone string  `json:"confirmationPhone"`
	DeliveryAddress   Address `json:"deliveryAddress"`
}

// UserAccount identifies the buyer.
type UserAccount struct {
	EmailAddress  string `json:"emailAddress"`
	AccountNumber string `json:"accountNumber"`
	Phone         string `json:"phone"`
}

// Purchase describes the order contents. Nothing populates it yet; it is sent
// as an empty object.
type Purchase struct{}

// Case is the payload submitted to the fraud service's create-case operation.
// It is built once per order, sent once, then discarded.
type Case struct {
	Purchase    Purchase                     `json:"purchase"`
	Recipient   optional.Optional[Recipient] `json:"recipient"`
	Card        optional.Optional[Card]      `json:"card"`
	UserAccount UserAccount                  `json:"userAccount"`
}

// CaseStatus is the fraud review state tracked on the local record.
type CaseStatus string

// Placeholder values written when a local case record is created. Nothing in
// this service updates them afterwards.
const (
	StatusPending      CaseStatus = "PENDING"
	PlaceholderCode               = "NA"
	PlaceholderScore              = 500.0
	PlaceholderEntries            = ""
)

// CaseRecord is the local tracking row for an order's fraud case, keyed by the
// order increment id.
type CaseRecord struct {
	ID          string     `json:"id"`
	Status      CaseStatus `json:"status"`
	Code        string     `json:"code"`
	Score       float64    `json:"score"`
	EntriesText string     `json:"entries_text"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewCaseRecord returns a record for orderID with the placeholder fields set.
func NewCaseRecord(orderID string, now time.Time) *CaseRecord {
	return &CaseRecord{
		ID:          orderID,
		Status:      StatusPending,
		Code:        PlaceholderCode,
		Score:       PlaceholderScore,
		EntriesText: PlaceholderEntries,
		CreatedAt:   now,
	}
}
