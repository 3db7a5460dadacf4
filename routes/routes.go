package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/controllers"
)

// RegisterRoutes wires the catalog endpoints. Facets live outside the
// /products group so the static path cannot collide with the :id wildcard.
func RegisterRoutes(r *gin.Engine, catalog *controllers.CatalogController) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("/", catalog.GetProducts)
		productRoutes.GET("/:id", catalog.GetProductByID)
	}

	r.GET("/facets", catalog.GetFacets)
}
