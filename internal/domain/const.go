package domain

const (
	// Page size defaults
	DEFAULT_LIST_PAGE_SIZE           = 25
	DEFAULT_ADDRESS_PARCEL_PAGE_SIZE = 6
	DEFAULT_BUCKET_PAGE_SIZE         = 25

	// DEFAULT_CONFIRM_THRESHOLD is the number of blocks after which a record is treated as final
	DEFAULT_CONFIRM_THRESHOLD = 5

	// PLATFORM_ADDRESS_TYPE_CHAR follows the network id in every platform address
	PLATFORM_ADDRESS_TYPE_CHAR = "c"
)
