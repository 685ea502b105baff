package criteria

import (
	"testing"

	domainCriteria "pos/src/shared/domain/criteria"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSelectSQL_NoCriteria(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	query, params := converter.ToSelectSQL("SELECT * FROM sales", domainCriteria.Criteria{})

	assert.Equal(t, "SELECT * FROM sales", query)
	assert.Empty(t, params)
}

func TestToSelectSQL_FiltersOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("payment_method", domainCriteria.OpEqual, "CASH").
		WithFilter("grand_total", domainCriteria.OpGreaterThanOrEqual, 10).
		WithOrder("created_at", domainCriteria.DESC).
		WithPagination(50, 100).
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM sales", crit)

	assert.Equal(t,
		"SELECT * FROM sales WHERE payment_method = $1 AND grand_total >= $2 ORDER BY created_at DESC LIMIT 50 OFFSET 100",
		query)
	assert.Equal(t, []interface{}{"CASH", 10}, params)
}

func TestToSelectSQL_LikeWrapsValue(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("name", domainCriteria.OpLike, "coffee").
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM products", crit)

	assert.Equal(t, "SELECT * FROM products WHERE name ILIKE $1", query)
	require.Len(t, params, 1)
	assert.Equal(t, "%coffee%", params[0])
}

func TestToSelectSQL_NullOperatorsTakeNoParam(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("customer_id", domainCriteria.OpIsNull, nil).
		WithFilter("staff", domainCriteria.OpEqual, "maria").
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM sales", crit)

	// El placeholder sigue numerado aunque IS NULL no consuma parámetro
	assert.Equal(t, "SELECT * FROM sales WHERE customer_id IS NULL AND staff = $1", query)
	assert.Equal(t, []interface{}{"maria"}, params)
}

func TestToCountSQL_IgnoresOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("payment_method", domainCriteria.OpEqual, "CARD").
		WithOrder("created_at", domainCriteria.DESC).
		WithPagination(10, 0).
		Build()

	query, params := converter.ToCountSQL("SELECT COUNT(*) FROM sales", crit)

	assert.Equal(t, "SELECT COUNT(*) FROM sales WHERE payment_method = $1", query)
	assert.Equal(t, []interface{}{"CARD"}, params)
}

func TestValidateAndSanitizeCriteria(t *testing.T) {
	helper := NewControllerHelper()

	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("payment_method", domainCriteria.OpEqual, "CASH").
		WithFilter("password", domainCriteria.OpEqual, "x"). // campo no permitido
		WithOrder("password", domainCriteria.ASC).
		WithPagination(10, 0).
		Build()

	sanitized := helper.ValidateAndSanitizeCriteria(crit, []string{"payment_method", "created_at"})

	require.Len(t, sanitized.Filters.Items, 1)
	assert.Equal(t, "payment_method", sanitized.Filters.Items[0].Field)

	// El ordenamiento inválido cae al default
	assert.Equal(t, "created_at", sanitized.Order.Field)
	assert.Equal(t, domainCriteria.DESC, sanitized.Order.OrderType)

	// La paginación se conserva
	require.NotNil(t, sanitized.Limit)
	assert.Equal(t, 10, *sanitized.Limit)
}
