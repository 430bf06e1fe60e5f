package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "pedidos_xpto/docs" // This will be auto-generated
	"pedidos_xpto/internal/adapter/http/handlers"
	repository2 "pedidos_xpto/internal/adapter/persistence/repository"
	"pedidos_xpto/internal/infrastructure/database"
	"pedidos_xpto/internal/usecase"
	"pedidos_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	catalog := buildCatalog()

	validationUseCase := usecase.NewOrderValidationUseCase(catalog)

	validationHandler := handlers.NewOrderValidationHandler(validationUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalog)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, validationHandler, catalogHandler)
}

// buildCatalog selects the catalog source. The in-memory reference catalog is
// the default; CATALOG_SOURCE=dynamodb switches to the DynamoDB-backed one.
func buildCatalog() interfaces.ICatalogRepository {
	if os.Getenv("CATALOG_SOURCE") == "dynamodb" {
		log.Printf("[catalog] using dynamodb catalog source")
		return repository2.NewCatalogDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[catalog] using in-memory catalog source")
	return repository2.NewCatalogMemoryRepository()
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
