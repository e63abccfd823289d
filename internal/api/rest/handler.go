package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/dto"
	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/executor"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetParcel retrieves a live parcel by its hash
	// GET /api/v1/parcels/:hash
	GetParcel(c *gin.Context)

	// ListParcels retrieves live parcels newest first
	// GET /api/v1/parcels?cursor=<cursor>&lastBlockNumber=<n>&lastParcelIndex=<n>&itemsPerPage=<size>
	ListParcels(c *gin.Context)

	// CountParcels counts live parcels
	// GET /api/v1/parcels/totalCount
	CountParcels(c *gin.Context)

	// GetPlatformAccount retrieves the chain balance and nonce of an address
	// GET /api/v1/addr-platform-account/:address
	GetPlatformAccount(c *gin.Context)

	// ListParcelsByAddress retrieves live parcels signed by or sent to an address
	// GET /api/v1/addr-platform-parcels/:address?page=<page>&itemsPerPage=<size>
	ListParcelsByAddress(c *gin.Context)

	// CountParcelsByAddress counts live parcels signed by or sent to an address
	// GET /api/v1/addr-platform-parcels/:address/totalCount
	CountParcelsByAddress(c *gin.Context)

	// ListUTXOByAssetType retrieves the UTXOs of an address for one asset type
	// GET /api/v1/addr-asset-utxo/:address/:assetType?confirmThreshold=<n>&onlyConfirmed=<bool>&cursor=<cursor>&itemsPerPage=<size>
	ListUTXOByAssetType(c *gin.Context)

	// AggregateUTXOBalances retrieves the balances of an address per asset type
	// GET /api/v1/aggs-utxo/:address?confirmThreshold=<n>&onlyConfirmed=<bool>&page=<page>&itemsPerPage=<size>
	AggregateUTXOBalances(c *gin.Context)

	// AggregateUTXOBalanceForType retrieves the balance of one asset type of an address
	// GET /api/v1/aggs-utxo/:address/:assetType?confirmThreshold=<n>&onlyConfirmed=<bool>
	AggregateUTXOBalanceForType(c *gin.Context)

	// GetAssetMintOutputs retrieves the mint outputs of an asset type
	// GET /api/v1/asset-mint-outputs/:assetType
	GetAssetMintOutputs(c *gin.Context)

	// RemoveAsset soft-deletes an asset record (requires authentication)
	// POST /api/v1/admin/assets/remove
	RemoveAsset(c *gin.Context)

	// ReviveAsset clears the soft-delete flag of an asset record (requires authentication)
	// POST /api/v1/admin/assets/revive
	ReviveAsset(c *gin.Context)

	// RetractParcel retracts a parcel (requires authentication)
	// POST /api/v1/admin/parcels/:hash/retract
	RetractParcel(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// GetParcel retrieves a live parcel by its hash
func (h *handler) GetParcel(c *gin.Context) {
	hash := c.Param("hash")
	if domain.NormalizeHash(hash) == "" {
		respondBadRequest(c, "Parcel hash is required")
		return
	}

	parcel, err := h.executor.GetParcel(c.Request.Context(), hash)
	if err != nil {
		respondError(c, err, "Failed to get parcel")
		return
	}

	if parcel == nil {
		respondNotFound(c, "Parcel not found")
		return
	}

	c.JSON(http.StatusOK, parcel)
}

// ListParcels retrieves live parcels newest first
func (h *handler) ListParcels(c *gin.Context) {
	queryParams, err := ParseListParcelsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListParcels(c.Request.Context(), queryParams.After, queryParams.ItemsPerPage)
	if err != nil {
		respondError(c, err, "Failed to list parcels")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CountParcels counts live parcels
func (h *handler) CountParcels(c *gin.Context) {
	count, err := h.executor.CountParcels(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to count parcels")
		return
	}

	c.JSON(http.StatusOK, count)
}

// GetPlatformAccount retrieves the chain balance and nonce of an address.
// An invalid address yields null.
func (h *handler) GetPlatformAccount(c *gin.Context) {
	account, err := h.executor.GetPlatformAccount(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err, "Failed to get platform account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// ListParcelsByAddress retrieves live parcels of an address.
// An invalid address yields an empty list.
func (h *handler) ListParcelsByAddress(c *gin.Context) {
	queryParams, err := ParseAddressParcelsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListParcelsByAddress(c.Request.Context(), c.Param("address"), queryParams.Page, queryParams.ItemsPerPage)
	if err != nil {
		respondError(c, err, "Failed to list parcels by address")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CountParcelsByAddress counts live parcels of an address.
// An invalid address yields 0.
func (h *handler) CountParcelsByAddress(c *gin.Context) {
	count, err := h.executor.CountParcelsByAddress(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err, "Failed to count parcels by address")
		return
	}

	c.JSON(http.StatusOK, count)
}

// ListUTXOByAssetType retrieves the UTXOs of an address for one asset type
func (h *handler) ListUTXOByAssetType(c *gin.Context) {
	queryParams, err := ParseListUTXOQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListUTXOByAssetType(
		c.Request.Context(),
		c.Param("address"),
		c.Param("assetType"),
		queryParams.Window(),
		queryParams.After,
		queryParams.ItemsPerPage,
	)
	if err != nil {
		respondError(c, err, "Failed to list UTXOs")
		return
	}

	c.JSON(http.StatusOK, response)
}

// AggregateUTXOBalances retrieves the balances of an address per asset type
func (h *handler) AggregateUTXOBalances(c *gin.Context) {
	queryParams, err := ParseAggregateBalancesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.AggregateUTXOBalances(
		c.Request.Context(),
		c.Param("address"),
		queryParams.Window(),
		queryParams.Page,
		queryParams.ItemsPerPage,
	)
	if err != nil {
		respondError(c, err, "Failed to aggregate balances")
		return
	}

	c.JSON(http.StatusOK, response)
}

// AggregateUTXOBalanceForType retrieves the balance of one asset type of an address.
// Yields null when the address holds none.
func (h *handler) AggregateUTXOBalanceForType(c *gin.Context) {
	queryParams, err := ParseWindowQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.AggregateUTXOBalanceForType(
		c.Request.Context(),
		c.Param("address"),
		c.Param("assetType"),
		queryParams.Window(),
	)
	if err != nil {
		respondError(c, err, "Failed to aggregate balance")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAssetMintOutputs retrieves the mint outputs of an asset type
func (h *handler) GetAssetMintOutputs(c *gin.Context) {
	assetType := c.Param("assetType")
	if assetType == "" {
		respondBadRequest(c, "Asset type is required")
		return
	}

	response, err := h.executor.GetAssetMintOutputs(c.Request.Context(), assetType)
	if err != nil {
		respondError(c, err, "Failed to get asset mint outputs")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RemoveAsset soft-deletes an asset record
func (h *handler) RemoveAsset(c *gin.Context) {
	var req dto.AssetIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.RemoveAsset(c.Request.Context(), req.Identity())
	if err != nil {
		respondError(c, err, "Failed to remove asset")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ReviveAsset clears the soft-delete flag of an asset record
func (h *handler) ReviveAsset(c *gin.Context) {
	var req dto.AssetIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ReviveAsset(c.Request.Context(), req.Identity())
	if err != nil {
		respondError(c, err, "Failed to revive asset")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RetractParcel retracts a parcel
func (h *handler) RetractParcel(c *gin.Context) {
	hash := c.Param("hash")
	if domain.NormalizeHash(hash) == "" {
		respondBadRequest(c, "Parcel hash is required")
		return
	}

	response, err := h.executor.RetractParcel(c.Request.Context(), hash)
	if err != nil {
		respondError(c, err, "Failed to retract parcel")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	response, err := h.executor.CheckHealth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
