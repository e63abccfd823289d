package dto

// AccountResponse represents the platform account state of an address at the best block
type AccountResponse struct {
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}
