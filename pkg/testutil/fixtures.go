package testutil

import (
	"casebridge/internal/order"
)

// OrderBuilder provides a fluent interface for building test orders. The
// default order ships to a second address and pays by card.
type OrderBuilder struct {
	order *order.Order
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &order.Order{
			IncrementID:   "1000123",
			CustomerEmail: "jane@example.com",
			CustomerID:    "42",
			BillingAddress: &order.Address{
				Street: []string{"100 Congress Ave"}, City: "Austin", RegionCode: "TX",
				Postcode: "78701", CountryID: "US", Telephone: "+1-512-555-0100",
				Firstname: "Jane", Lastname: "Roe",
			},
			ShippingAddress: &order.Address{
				Street: []string{"1 Infinite Loop"}, City: "Cupertino", RegionCode: "CA",
				Postcode: "95014", CountryID: "US", Telephone: "+1-408-555-0199",
				Email: "ship@example.com", Firstname: "John", Lastname: "Doe",
			},
			Payment: order.Payment{
				Method:      order.PaymentMethod{Code: "ccsave", Kind: order.MethodKindCard},
				CcOwner:     "Jane Roe",
				CcLast4:     "1111",
				CcExpMonth:  9,
				CcExpYear:   2029,
				CcNumberEnc: "enc",
				CcNumber:    "4111111111111111",
			},
		},
	}
}

func (b *OrderBuilder) WithIncrementID(id string) *OrderBuilder {
	b.order.IncrementID = id
	return b
}

// Guest clears the customer account id.
func (b *OrderBuilder) Guest() *OrderBuilder {
	b.order.CustomerID = ""
	return b
}

// WithoutShipping models a digital or virtual order.
func (b *OrderBuilder) WithoutShipping() *OrderBuilder {
	b.order.ShippingAddress = nil
	return b
}

func (b *OrderBuilder) WithoutBilling() *OrderBuilder {
	b.order.BillingAddress = nil
	return b
}

// PaidOffline switches to a non-card method and clears every card field.
func (b *OrderBuilder) PaidOffline(code string) *OrderBuilder {
	b.order.Payment = order.Payment{Method: order.PaymentMethod{Code: code, Kind: order.MethodKindOther}}
	return b
}

func (b *OrderBuilder) WithCardNumber(raw string) *OrderBuilder {
	b.order.Payment.CcNumber = raw
	return b
}

// Build returns a copy so one builder can seed several tests.
func (b *OrderBuilder) Build() *order.Order {
	o := *b.order
	if b.order.BillingAddress != nil {
		billing := *b.order.BillingAddress
		o.BillingAddress = &billing
	}
	if b.order.ShippingAddress != nil {
		shipping := *b.order.ShippingAddress
		o.ShippingAddress = &shipping
	}
	return &o
}
