package routes

import (
	"gestao_imobiliaria/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProperties = "/properties"
	PathContracts  = "/contracts"
	PathTenants    = "/tenants"
	PathLegalCases = "/legal-cases"
)

func addPropertyRoutes(rg *gin.RouterGroup, h *handlers.PropertyHandler) {
	properties := rg.Group(PathProperties)
	{
		properties.POST("", h.CreateProperty)
		properties.GET("", h.ListProperties)
		properties.GET("/:id", h.GetProperty)
		properties.PUT("/:id", h.UpdateProperty)
		properties.DELETE("/:id", h.DeleteProperty)
	}
}

func addContractRoutes(rg *gin.RouterGroup, h *handlers.ContractHandler) {
	contracts := rg.Group(PathContracts)
	{
		// sync-property-status must be registered before /:id routes.
		contracts.POST("/sync-property-status", h.SyncPropertyStatus)
		contracts.POST("", h.CreateContract)
		contracts.GET("", h.ListContracts)
		contracts.GET("/:id", h.GetContract)
		contracts.PUT("/:id", h.UpdateContract)
		contracts.PATCH("/:id/status", h.UpdateContractStatus)
		contracts.POST("/:id/adjustments", h.RegisterAdjustment)
		contracts.DELETE("/:id", h.DeleteContract)
	}
}

func addTenantRoutes(rg *gin.RouterGroup, h *handlers.TenantHandler) {
	tenants := rg.Group(PathTenants)
	{
		tenants.POST("", h.CreateTenant)
		tenants.GET("", h.ListTenants)
		tenants.GET("/:id", h.GetTenant)
		tenants.PUT("/:id", h.UpdateTenant)
		tenants.DELETE("/:id", h.DeleteTenant)
	}
}

func addLegalCaseRoutes(rg *gin.RouterGroup, h *handlers.LegalCaseHandler) {
	legalCases := rg.Group(PathLegalCases)
	{
		legalCases.POST("", h.CreateLegalCase)
		legalCases.GET("", h.ListLegalCases)
		legalCases.GET("/:id", h.GetLegalCase)
		legalCases.PUT("/:id", h.UpdateLegalCase)
		legalCases.PATCH("/:id/status", h.UpdateLegalCaseStatus)
		legalCases.DELETE("/:id", h.DeleteLegalCase)
	}
}
