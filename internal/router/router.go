package router

import (
	"net/http"
	"time"

	"stockbook/internal/apierror"
	"stockbook/internal/config"
	"stockbook/internal/handler"
	"stockbook/internal/middleware"
	"stockbook/internal/repository"
	"stockbook/internal/service"
	"stockbook/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// Wrong verb on a known path is a fixed 405, never a 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, apierror.New("Method Not Allowed"))
	})

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	typeRepo := repository.NewTypeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)
	productSvc := service.NewProductService(productRepo, brandRepo, typeRepo, rdb, dispatcher)
	brandSvc := service.NewBrandService(brandRepo)
	typeSvc := service.NewTypeService(typeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	brandsH := handler.NewBrandsHandler(brandSvc)
	typesH := handler.NewTypesHandler(typeSvc)
	pricesH := handler.NewPricesHandler(productRepo, rdb,
		time.Duration(cfg.PriceCacheTTLMinutes)*time.Minute)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.PATCH("/:id", productsH.Update)
			products.DELETE("", productsH.Delete)

			products.GET("/:id/price", pricesH.GetPrice)
			products.GET("/price-changes", pricesH.RecentChanges)
		}

		brands := v1.Group("/brands")
		{
			brands.POST("", brandsH.Create)
			brands.GET("", brandsH.List)
			brands.PATCH("/:id", brandsH.Update)
		}

		types := v1.Group("/types")
		{
			types.POST("", typesH.Create)
			types.GET("", typesH.List)
			types.PATCH("/:id", typesH.Update)
		}
	}

	return r
}
