package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	Last4 string `json:"last4"`
}

func TestOptional(t *testing.T) {
	t.Run("zero value is absent", func(t *testing.T) {
		var o Optional[card]
		v, ok := o.Get()
		assert.False(t, ok)
		assert.Equal(t, card{}, v)
		assert.False(t, o.IsPresent())
	})

	t.Run("some holds the value", func(t *testing.T) {
		o := Some(card{Last4: "4242"})
		v, ok := o.Get()
		require.True(t, ok)
		assert.Equal(t, "4242", v.Last4)
		assert.Equal(t, "4242", o.OrZero().Last4)
	})

	t.Run("absent marshals to null inside a struct", func(t *testing.T) {
		payload := struct {
			Card Optional[card] `json:"card"`
		}{Card: None[card]()}
		out, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"card":null}`, string(out))
	})

	t.Run("present marshals to the value", func(t *testing.T) {
		out, err := json.Marshal(Some(card{Last4: "1111"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"last4":"1111"}`, string(out))
	})

	t.Run("unmarshal null is absent and object is present", func(t *testing.T) {
		var absent Optional[card]
		require.NoError(t, json.Unmarshal([]byte("null"), &absent))
		assert.False(t, absent.IsPresent())

		var present Optional[card]
		require.NoError(t, json.Unmarshal([]byte(`{"last4":"0005"}`), &present))
		v, ok := present.Get()
		require.True(t, ok)
		assert.Equal(t, "0005", v.Last4)
	})
}
