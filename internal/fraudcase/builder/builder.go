// Package builder translates a commerce order into a fraud case payload.
//
// Each builder is a direct field mapping from the order graph. Absence is a
// valid outcome for card info (non-card payments) and recipients (no shipping
// address); a missing billing address where one is required is an
// invariant violation and aborts assembly.
package builder

import (
	"context"
	"log/slog"

	"casebridge/internal/fraudcase/models"
	"casebridge/internal/order"
	"casebridge/internal/platform/privacy"
	dErrors "casebridge/pkg/domain-errors"
	"casebridge/pkg/optional"
)

// Builder assembles case payloads. It holds no per-order state and is safe
// for concurrent use.
type Builder struct {
	logger *slog.Logger
}

// New creates a Builder. A nil logger discards diagnostics.
func New(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{logger: logger}
}

// Assemble composes card info, purchase, recipient and user account into one
// case. Any builder error aborts assembly without a partial result.
func (b *Builder) Assemble(ctx context.Context, o *order.Order) (*models.Case, error) {
	if o == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "order is required")
	}

	card, err := b.CardInfo(ctx, o)
	if err != nil {
		return nil, err
	}
	account, err := b.UserAccount(o)
	if err != nil {
		return nil, err
	}

	return &models.Case{
		Card:        card,
		Purchase:    b.Purchase(o),
		Recipient:   b.Recipient(o),
		UserAccount: account,
	}, nil
}

// FormatAddress converts an order address into the fraud service shape.
// Fields are copied verbatim; unit and coordinates stay unset.
func FormatAddress(a order.Address) models.Address {
	return models.Address{
		StreetAddress: a.StreetAddress(),
		City:          a.City,
		ProvinceCode:  a.RegionCode,
		PostalCode:    a.Postcode,
		CountryCode:   a.CountryID,
	}
}

// CardInfo extracts card metadata when the order was paid with a card-family
// method. Only the redacted payment summary and masked email are logged.
func (b *Builder) CardInfo(ctx context.Context, o *order.Order) (optional.Optional[models.Card], error) {
	p := o.Payment
	b.logger.DebugContext(ctx, "inspecting payment for card info",
		"order_id", o.IncrementID,
		"customer_email", privacy.MaskEmail(o.CustomerEmail),
		"payment", p,
	)
	if !p.Method.IsCard() {
		return optional.None[models.Card](), nil
	}
	if o.BillingAddress == nil {
		return optional.None[models.Card](), dErrors.New(dErrors.CodeInvariantViolation, "card payment requires a billing address")
	}

	return optional.Some(models.Card{
		CardholderName: p.CcOwner,
		Last4:          p.CcLast4,
		ExpiryMonth:    p.CcExpMonth,
		ExpiryYear:     p.CcExpYear,
		Hash:           p.CcNumberEnc,
		Bin:            Bin(p.CcNumber),
		BillingAddress: FormatAddress(*o.BillingAddress),
	}), nil
}

// Bin returns the first six characters of a raw card number, or the whole
// value when shorter. No padding is applied.
func Bin(number string) string {
	return number[:min(6, len(number))]
}

// Recipient describes the shipping destination. Orders without a shipping
// address (digital goods) have no recipient.
func (b *Builder) Recipient(o *order.Order) optional.Optional[models.Recipient] {
	a := o.ShippingAddress
	if a == nil {
		return optional.None[models.Recipient]()
	}
	return optional.Some(models.Recipient{
		FullName:          a.Firstname + " " + a.Lastname,
		ConfirmationPhone: a.Telephone,
		ConfirmationEmail: a.Email,
		DeliveryAddress:   FormatAddress(*a),
	})
}

// UserAccount describes the buyer. The phone comes from the billing address,
// which must be present.
func (b *Builder) UserAccount(o *order.Order) (models.UserAccount, error) {
	if o.BillingAddress == nil {
		return models.UserAccount{}, dErrors.New(dErrors.CodeInvariantViolation, "order billing address is required")
	}
	return models.UserAccount{
		EmailAddress:  o.CustomerEmail,
		AccountNumber: o.CustomerID,
		Phone:         o.BillingAddress.Telephone,
	}, nil
}

// Purchase returns an empty purchase record.
// TODO: map order line items, totals and currency into Purchase.
func (b *Builder) Purchase(_ *order.Order) models.Purchase {
	return models.Purchase{}
}
