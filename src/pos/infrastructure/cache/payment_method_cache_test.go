package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodCache(t *testing.T) {
	c := NewPaymentMethodCache()
	c.Put(PaymentMethod{Code: "CASH", Name: "Cash"})
	c.Put(PaymentMethod{Code: "CARD", Name: "Credit/Debit Card"})

	pm, ok := c.Get("CASH")
	require.True(t, ok)
	assert.Equal(t, "Cash", pm.Name)

	// La búsqueda normaliza el código a mayúsculas
	pm, ok = c.Get("card")
	require.True(t, ok)
	assert.Equal(t, "CARD", pm.Code)

	_, ok = c.Get("CRYPTO")
	assert.False(t, ok)
}

func TestPaymentMethodCache_GetName(t *testing.T) {
	c := NewPaymentMethodCache()
	c.Put(PaymentMethod{Code: "TRANSFER", Name: "Bank Transfer"})

	assert.Equal(t, "Bank Transfer", c.GetName("transfer"))
	assert.Equal(t, "Unknown", c.GetName("CRYPTO"))
}
