package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"casebridge/internal/order"
	"casebridge/internal/sentinel"
)

func TestRunConcurrent(t *testing.T) {
	result := RunConcurrent(9, func(idx int) error {
		switch idx % 3 {
		case 0:
			return nil
		case 1:
			return fmt.Errorf("lookup: %w", sentinel.ErrNotFound)
		default:
			return errors.New("boom")
		}
	})

	assert.Equal(t, int32(3), result.Successes)
	assert.Equal(t, int32(3), result.NotFounds)
	assert.Equal(t, int32(3), result.Errors)
	assert.Equal(t, int32(9), result.Total())
}

func TestOrderBuilder(t *testing.T) {
	b := NewOrderBuilder()
	first := b.Build()
	first.BillingAddress.City = "changed"

	second := b.WithoutShipping().PaidOffline("checkmo").Build()
	assert.Equal(t, "Austin", second.BillingAddress.City)
	assert.Nil(t, second.ShippingAddress)
	assert.Equal(t, order.MethodKindOther, second.Payment.Method.Kind)
	assert.Empty(t, second.Payment.CcNumber)
}
