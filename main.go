package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	apiConfig "pos/src/api/config"
	posUseCase "pos/src/pos/application/usecase"
	posCache "pos/src/pos/infrastructure/cache"
	posController "pos/src/pos/infrastructure/controller"
	posPersistence "pos/src/pos/infrastructure/persistence"
	sharedConfig "pos/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDecimal obtiene una variable de entorno decimal o el valor por defecto
func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("⚠️  Invalid value for %s (%q), using default %s", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvInt obtiene una variable de entorno entera o el valor por defecto
func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  Invalid value for %s (%q), using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Checkout Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if getEnv("PROMETHEUS_ENABLED", "true") == "true" {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("✅ /metrics endpoint registered")
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar GZIP y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "pos_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, dbHost, dbPort, dbName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("❌ Error al abrir la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Error al verificar la conexión a la base de datos: %v", err)
	}
	log.Println("✅ Conexión a la base de datos establecida con éxito")

	// Ejecutar migraciones de esquema
	migrationsPath := getEnv("MIGRATIONS_PATH", "migrations")
	if err := runDBMigration("file://"+migrationsPath, connStr); err != nil {
		log.Fatalf("❌ Error al ejecutar migraciones: %v", err)
	}
	log.Println("✅ Migraciones aplicadas")

	// Cargar cache de métodos de pago
	pmCache := posCache.NewPaymentMethodCache()
	if err := pmCache.LoadFromDB(db); err != nil {
		log.Fatalf("❌ Error al cargar métodos de pago: %v", err)
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = getEnv("SERVICE_VERSION", "1.0.0")
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulo POS
	setupPosModule(v1, db, pmCache)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor POS iniciado en http://localhost:%s", port)
	router.Run(":" + port)
}

// setupPosModule arma las dependencias del módulo POS: repositorios,
// casos de uso y controladores
func setupPosModule(router *gin.RouterGroup, db *sql.DB, pmCache *posCache.PaymentMethodCache) {
	log.Println("Configurando módulo POS...")

	// Constantes de negocio configurables por despliegue
	cfg := posUseCase.DefaultConfig()
	cfg.TaxRate = getEnvDecimal("TAX_RATE", cfg.TaxRate)
	cfg.LoyaltyRate = getEnvDecimal("LOYALTY_RATE", cfg.LoyaltyRate)
	cfg.RedeemBlockPoints = getEnvInt("REDEEM_BLOCK_POINTS", cfg.RedeemBlockPoints)
	cfg.RedeemBlockValue = getEnvDecimal("REDEEM_BLOCK_VALUE", cfg.RedeemBlockValue)

	storeName := getEnv("STORE_NAME", "NEXUS TECH POS")

	// Repositorios
	saleRepo := posPersistence.NewSalePostgresRepository(db)
	productRepo := posPersistence.NewProductPostgresRepository(db)
	customerRepo := posPersistence.NewCustomerPostgresRepository(db)

	// Casos de uso
	checkoutUC := posUseCase.NewCheckoutUseCase(saleRepo, productRepo, customerRepo, pmCache, cfg)
	previewTotalsUC := posUseCase.NewPreviewTotalsUseCase(productRepo, customerRepo, cfg)
	listSalesUC := posUseCase.NewListSalesUseCase(saleRepo)
	getSaleUC := posUseCase.NewGetSaleUseCase(saleRepo)
	exportCSVUC := posUseCase.NewExportSalesCSVUseCase(saleRepo)
	dailyReportUC := posUseCase.NewDailyReportUseCase(saleRepo)
	searchProductsUC := posUseCase.NewSearchProductsUseCase(productRepo)
	searchCustomersUC := posUseCase.NewSearchCustomersUseCase(customerRepo)

	// Controladores
	checkoutCtrl := posController.NewCheckoutController(checkoutUC, previewTotalsUC)
	saleCtrl := posController.NewSaleController(listSalesUC, getSaleUC, exportCSVUC, pmCache, storeName)
	reportCtrl := posController.NewReportController(dailyReportUC)
	catalogCtrl := posController.NewCatalogController(searchProductsUC, searchCustomersUC)

	// Registrar rutas
	checkoutCtrl.RegisterRoutes(router)
	saleCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)
	catalogCtrl.RegisterRoutes(router)
}

// runDBMigration aplica las migraciones pendientes; un esquema ya al día
// no es un error
func runDBMigration(migrationURL, dbSource string) error {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}

	if err := migration.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
