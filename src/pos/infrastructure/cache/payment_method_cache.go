package cache

import (
	"database/sql"
	"log"
	"strings"
	"sync"
)

// PaymentMethod representa un método de pago en el cache
type PaymentMethod struct {
	Code string
	Name string
}

// PaymentMethodCache cache en memoria de los métodos de pago activos.
// Se carga una vez al arrancar; el checkout valida contra este cache el
// código que llega en el request.
type PaymentMethodCache struct {
	methods map[string]PaymentMethod
	mu      sync.RWMutex
}

// NewPaymentMethodCache crea un nuevo cache de métodos de pago
func NewPaymentMethodCache() *PaymentMethodCache {
	return &PaymentMethodCache{
		methods: make(map[string]PaymentMethod),
	}
}

// LoadFromDB carga los métodos de pago activos desde la base de datos
func (c *PaymentMethodCache) LoadFromDB(db *sql.DB) error {
	log.Println("🔄 Loading payment methods into cache...")

	query := `
		SELECT code, name
		FROM payment_methods
		WHERE is_active = true
	`

	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var pm PaymentMethod
		if err := rows.Scan(&pm.Code, &pm.Name); err != nil {
			log.Printf("⚠️  Error scanning payment method: %v", err)
			continue
		}
		c.methods[pm.Code] = pm
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	log.Printf("✅ Loaded %d payment methods into cache", count)
	return nil
}

// Put agrega un método al cache (útil en tests)
func (c *PaymentMethodCache) Put(pm PaymentMethod) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.methods[pm.Code] = pm
}

// Get obtiene un método de pago por código
func (c *PaymentMethodCache) Get(code string) (PaymentMethod, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pm, ok := c.methods[strings.ToUpper(code)]
	return pm, ok
}

// GetName obtiene solo el nombre de un método de pago por código
func (c *PaymentMethodCache) GetName(code string) string {
	pm, ok := c.Get(code)
	if !ok {
		return "Unknown"
	}
	return pm.Name
}
