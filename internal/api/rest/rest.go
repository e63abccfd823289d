package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-ledger-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes.
// publicMiddleware applies to the read endpoints only, e.g. rate limiting.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, publicMiddleware ...gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Read endpoints (public access)
	public := v1.Group("", publicMiddleware...)
	{
		// Parcel endpoints
		public.GET("/parcels", handler.ListParcels)
		public.GET("/parcels/totalCount", handler.CountParcels)
		public.GET("/parcels/:hash", handler.GetParcel)

		// Address endpoints
		public.GET("/addr-platform-account/:address", handler.GetPlatformAccount)
		public.GET("/addr-platform-parcels/:address", handler.ListParcelsByAddress)
		public.GET("/addr-platform-parcels/:address/totalCount", handler.CountParcelsByAddress)

		// Asset endpoints
		public.GET("/addr-asset-utxo/:address/:assetType", handler.ListUTXOByAssetType)
		public.GET("/aggs-utxo/:address", handler.AggregateUTXOBalances)
		public.GET("/aggs-utxo/:address/:assetType", handler.AggregateUTXOBalanceForType)
		public.GET("/asset-mint-outputs/:assetType", handler.GetAssetMintOutputs)
	}

	// Reorg reconciliation endpoints (requires authentication)
	admin := v1.Group("/admin", middleware.Auth(authCfg))
	{
		admin.POST("/assets/remove", handler.RemoveAsset)
		admin.POST("/assets/revive", handler.ReviveAsset)
		admin.POST("/parcels/:hash/retract", handler.RetractParcel)
	}
}
