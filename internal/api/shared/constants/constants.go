package constants

const (
	MAX_PAGE_SIZE                     = 100
	DEFAULT_PAGE_SIZE                 = 25
	DEFAULT_ADDRESS_PARCELS_PAGE_SIZE = 6
	DEFAULT_PAGE                      = 1
	DEFAULT_RATE_LIMIT_PER_MINUTE     = 600
)
