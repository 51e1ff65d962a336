package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casebridge/pkg/optional"
)

func TestNewCaseRecord(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := NewCaseRecord("1000123", now)

	assert.Equal(t, "1000123", record.ID)
	assert.Equal(t, StatusPending, record.Status)
	assert.Equal(t, "NA", record.Code)
	assert.Equal(t, 500.0, record.Score)
	assert.Equal(t, "", record.EntriesText)
	assert.Equal(t, now, record.CreatedAt)
}

func TestCaseWireShape(t *testing.T) {
	t.Run("absent card and recipient encode as null", func(t *testing.T) {
		c := Case{UserAccount: UserAccount{EmailAddress: "buyer@example.com"}}
		out, err := json.Marshal(c)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Nil(t, decoded["card"])
		assert.Nil(t, decoded["recipient"])
		assert.Equal(t, map[string]any{}, decoded["purchase"])
		assert.Equal(t, "buyer@example.com", decoded["userAccount"].(map[string]any)["emailAddress"])
	})

	t.Run("unset address fields encode as null", func(t *testing.T) {
		c := Case{Recipient: optional.Some(Recipient{FullName: "Jane Roe", DeliveryAddress: Address{City: "Austin"}})}
		out, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"unit":null`)
		assert.Contains(t, string(out), `"latitude":null`)
		assert.Contains(t, string(out), `"fullName":"Jane Roe"`)
	})
}

func TestSubmissionResult(t *testing.T) {
	at := time.Now()
	assert.True(t, Sent("1", "abc123", at).Succeeded())
	assert.False(t, Sent("1", "", at).Succeeded())
	failed := Failed("1", "timeout", "request timeout", at)
	assert.False(t, failed.Succeeded())
	assert.Equal(t, SubmissionFailed, failed.Status)
	assert.Equal(t, "timeout", failed.Category)
}
