// Package order models the subset of the host commerce order that the fraud
// case bridge consumes. Values are read-only once ingested.
package order

import (
	"log/slog"
	"strings"

	"casebridge/internal/platform/privacy"
)

// Order is a purchase record owned by the upstream commerce system.
type Order struct {
	IncrementID     string
	CustomerEmail   string
	CustomerID      string // empty for guest checkouts
	BillingAddress  *Address
	ShippingAddress *Address // nil for orders without physical shipment
	Payment         Payment
}

// Address is the commerce system's postal address shape.
type Address struct {
	Street     []string
	City       string
	RegionCode string
	Postcode   string
	CountryID  string
	Telephone  string
	Email      string
	Firstname  string
	Lastname   string
}

// StreetAddress returns the street lines in their stored, newline separated form.
func (a Address) StreetAddress() string {
	return strings.Join(a.Street, "\n")
}

// MethodKind tags whether a payment method belongs to the card family.
type MethodKind string

const (
	MethodKindCard  MethodKind = "card"
	MethodKindOther MethodKind = "other"
)

// PaymentMethod identifies the method an order was paid with. Kind is resolved
// once at ingestion by a MethodClassifier.
type PaymentMethod struct {
	Code string
	Kind MethodKind
}

// IsCard reports whether the method is card-family.
func (m PaymentMethod) IsCard() bool {
	return m.Kind == MethodKindCard
}

// Payment carries the order's payment record. CcNumber and CcNumberEnc are
// sensitive and never appear in String or log output.
type Payment struct {
	Method      PaymentMethod
	CcOwner     string
	CcLast4     string
	CcExpMonth  int
	CcExpYear   int
	CcNumberEnc string
	CcNumber    string
}

// LogValue implements slog.LogValuer with card data redacted.
func (p Payment) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("method", p.Method.Code),
		slog.String("kind", string(p.Method.Kind)),
		slog.String("last4", privacy.MaskLast4(p.CcLast4)),
		slog.String("number", privacy.MaskPAN(p.CcNumber)),
	)
}

// String keeps payment records from leaking through %v formatting.
func (p Payment) String() string {
	return "payment{method=" + p.Method.Code + " kind=" + string(p.Method.Kind) + " last4=" + privacy.MaskLast4(p.CcLast4) + "}"
}
