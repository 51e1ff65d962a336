package handler

import (
	"strings"

	"casebridge/internal/order"
	"casebridge/pkg/validation"
)

// OrderRequest is the order snapshot posted by the commerce platform's order
// hooks. Only the increment id is required; every other field is copied as
// received.
type OrderRequest struct {
	IncrementID     string          `json:"increment_id" validate:"required,notblank,max=64"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerID      string          `json:"customer_id"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	ShippingAddress *AddressRequest `json:"shipping_address"`
	Payment         PaymentRequest  `json:"payment"`
}

type AddressRequest struct {
	Street     []string `json:"street"`
	City       string   `json:"city"`
	RegionCode string   `json:"region_code"`
	Postcode   string   `json:"postcode"`
	CountryID  string   `json:"country_id"`
	Telephone  string   `json:"telephone"`
	Email      string   `json:"email"`
	Firstname  string   `json:"firstname"`
	Lastname   string   `json:"lastname"`
}

type PaymentRequest struct {
	Method      string `json:"method"`
	CcOwner     string `json:"cc_owner"`
	CcLast4     string `json:"cc_last4"`
	CcExpMonth  int    `json:"cc_exp_month"`
	CcExpYear   int    `json:"cc_exp_year"`
	CcNumberEnc string `json:"cc_number_enc"`
	CcNumber    string `json:"cc_number"`
}

// Normalize trims the identifier only. Address and payment data are kept
// verbatim.
func (r *OrderRequest) Normalize() {
	r.IncrementID = strings.TrimSpace(r.IncrementID)
}

func (r *OrderRequest) Validate() error {
	return validation.Validate(r)
}

// toOrder converts the request, resolving the payment method kind once.
func (r *OrderRequest) toOrder(classifier *order.MethodClassifier) *order.Order {
	return &order.Order{
		IncrementID:     r.IncrementID,
		CustomerEmail:   r.CustomerEmail,
		CustomerID:      r.CustomerID,
		BillingAddress:  r.BillingAddress.toAddress(),
		ShippingAddress: r.ShippingAddress.toAddress(),
		Payment: order.Payment{
			Method:      classifier.Classify(r.Payment.Method),
			CcOwner:     r.Payment.CcOwner,
			CcLast4:     r.Payment.CcLast4,
			CcExpMonth:  r.Payment.CcExpMonth,
			CcExpYear:   r.Payment.CcExpYear,
			CcNumberEnc: r.Payment.CcNumberEnc,
			CcNumber:    r.Payment.CcNumber,
		},
	}
}

func (a *AddressRequest) toAddress() *order.Address {
	if a == nil {
		return nil
	}
	return &order.Address{
		Street:     a.Street,
		City:       a.City,
		RegionCode: a.RegionCode,
		Postcode:   a.Postcode,
		CountryID:  a.CountryID,
		Telephone:  a.Telephone,
		Email:      a.Email,
		Firstname:  a.Firstname,
		Lastname:   a.Lastname,
	}
}
