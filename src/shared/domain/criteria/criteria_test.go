package criteria

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaBuilder_FromURLValues(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "25")
	values.Set("offset", "50")
	values.Set("order_by", "created_at")
	values.Set("order_dir", "desc")

	crit := NewCriteriaBuilder().FromURLValues(values).Build()

	require.NotNil(t, crit.Limit)
	require.NotNil(t, crit.Offset)
	assert.Equal(t, 25, *crit.Limit)
	assert.Equal(t, 50, *crit.Offset)
	assert.Equal(t, "created_at", crit.Order.Field)
	assert.Equal(t, DESC, crit.Order.OrderType)
}

func TestCriteriaBuilder_FromURLValues_Defaults(t *testing.T) {
	crit := NewCriteriaBuilder().FromURLValues(url.Values{}).Build()

	assert.Nil(t, crit.Limit)
	assert.Nil(t, crit.Offset)
	assert.True(t, crit.Order.IsEmpty())
	assert.True(t, crit.Filters.IsEmpty())
}

func TestCriteriaBuilder_FromURLValues_InvalidValues(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "not-a-number")
	values.Set("offset", "-5")
	values.Set("order_by", "name")

	crit := NewCriteriaBuilder().FromURLValues(values).Build()

	// Limit inválido: sin paginación
	assert.Nil(t, crit.Limit)
	// El ordenamiento sin order_dir cae a ASC
	assert.Equal(t, ASC, crit.Order.OrderType)
}

func TestCriteriaBuilder_WithFilter(t *testing.T) {
	crit := NewCriteriaBuilder().
		WithFilter("payment_method", OpEqual, "CASH").
		WithFilter("created_at", OpGreaterThanOrEqual, "2026-08-30").
		Build()

	require.Len(t, crit.Filters.Items, 2)
	assert.Equal(t, OpEqual, crit.Filters.Items[0].Operator)
	assert.Equal(t, "CASH", crit.Filters.Items[0].Value)
}
