package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/constants"
	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/executor"
	"github.com/feral-file/ff-ledger-indexer/internal/assets"
	"github.com/feral-file/ff-ledger-indexer/internal/pagination"
	"github.com/feral-file/ff-ledger-indexer/internal/parcels"
)

// ListParcelsQueryParams holds query parameters for GET /parcels
type ListParcelsQueryParams struct {
	// Opaque cursor returned by the previous page, takes precedence over the explicit position
	Cursor string `form:"cursor"`

	// Explicit position of the last parcel of the previous page
	LastBlockNumber *uint64 `form:"lastBlockNumber"`
	LastParcelIndex *uint64 `form:"lastParcelIndex"`

	ItemsPerPage int `form:"itemsPerPage,default=25"`

	// After is the decoded position
	After pagination.Cursor `form:"-"`
}

// ParseListParcelsQuery parses query parameters for GET /parcels
func ParseListParcelsQuery(c *gin.Context) (*ListParcelsQueryParams, error) {
	var params ListParcelsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	after, err := resolveCursor(params.Cursor, len(parcels.SortKeys), params.LastBlockNumber, params.LastParcelIndex)
	if err != nil {
		return nil, err
	}
	params.After = after
	params.ItemsPerPage = capPageSize(params.ItemsPerPage)

	return &params, nil
}

// Validate validates the query parameters
func (p *ListParcelsQueryParams) Validate() error {
	return validatePageSize(p.ItemsPerPage)
}

// AddressParcelsQueryParams holds query parameters for GET /addr-platform-parcels/:address
type AddressParcelsQueryParams struct {
	Page         int `form:"page,default=1"`
	ItemsPerPage int `form:"itemsPerPage,default=6"`
}

// ParseAddressParcelsQuery parses query parameters for GET /addr-platform-parcels/:address
func ParseAddressParcelsQuery(c *gin.Context) (*AddressParcelsQueryParams, error) {
	var params AddressParcelsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.ItemsPerPage = capPageSize(params.ItemsPerPage)
	return &params, nil
}

// Validate validates the query parameters
func (p *AddressParcelsQueryParams) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	return validatePageSize(p.ItemsPerPage)
}

// WindowQueryParams holds the confirmation window parameters shared by asset queries
type WindowQueryParams struct {
	ConfirmThreshold *uint64 `form:"confirmThreshold"`
	// OnlyConfirmed selects the confirmed partition, false selects the pending one
	OnlyConfirmed bool `form:"onlyConfirmed,default=true"`
}

// Window converts the parameters into an executor window
func (p WindowQueryParams) Window() executor.Window {
	return executor.Window{
		Threshold:     p.ConfirmThreshold,
		OnlyConfirmed: p.OnlyConfirmed,
	}
}

// ListUTXOQueryParams holds query parameters for GET /addr-asset-utxo/:address/:assetType
type ListUTXOQueryParams struct {
	WindowQueryParams

	Cursor string `form:"cursor"`

	LastBlockNumber      *uint64 `form:"lastBlockNumber"`
	LastParcelIndex      *uint64 `form:"lastParcelIndex"`
	LastTransactionIndex *uint64 `form:"lastTransactionIndex"`

	ItemsPerPage int `form:"itemsPerPage,default=25"`

	After pagination.Cursor `form:"-"`
}

// ParseListUTXOQuery parses query parameters for GET /addr-asset-utxo/:address/:assetType
func ParseListUTXOQuery(c *gin.Context) (*ListUTXOQueryParams, error) {
	var params ListUTXOQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	after, err := resolveCursor(params.Cursor, len(assets.UTXOSortKeys),
		params.LastBlockNumber, params.LastParcelIndex, params.LastTransactionIndex)
	if err != nil {
		return nil, err
	}
	params.After = after
	params.ItemsPerPage = capPageSize(params.ItemsPerPage)

	return &params, nil
}

// Validate validates the query parameters
func (p *ListUTXOQueryParams) Validate() error {
	return validatePageSize(p.ItemsPerPage)
}

// AggregateBalancesQueryParams holds query parameters for GET /aggs-utxo/:address
type AggregateBalancesQueryParams struct {
	WindowQueryParams

	// Page is 0-based
	Page         int `form:"page,default=0"`
	ItemsPerPage int `form:"itemsPerPage,default=25"`
}

// ParseAggregateBalancesQuery parses query parameters for GET /aggs-utxo/:address
func ParseAggregateBalancesQuery(c *gin.Context) (*AggregateBalancesQueryParams, error) {
	var params AggregateBalancesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.ItemsPerPage = capPageSize(params.ItemsPerPage)
	return &params, nil
}

// Validate validates the query parameters
func (p *AggregateBalancesQueryParams) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("page must not be negative")
	}
	return validatePageSize(p.ItemsPerPage)
}

// ParseWindowQuery parses the confirmation window parameters
func ParseWindowQuery(c *gin.Context) (*WindowQueryParams, error) {
	var params WindowQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// resolveCursor decodes the opaque cursor or, when absent, builds one from the explicit position
func resolveCursor(token string, keys int, position ...*uint64) (pagination.Cursor, error) {
	if token != "" {
		return pagination.DecodeCursor(token, keys)
	}
	return pagination.NewCursor(position...), nil
}

func capPageSize(size int) int {
	if size > constants.MAX_PAGE_SIZE {
		return constants.MAX_PAGE_SIZE
	}
	return size
}

func validatePageSize(size int) error {
	if size < 1 {
		return fmt.Errorf("itemsPerPage must be at least 1")
	}
	return nil
}
