package domain

import "time"

// Wallet is the core's view of a managed account: its current owner and the
// relay nonce. The funds-holding account contract itself lives outside the
// core and is reached through the call-executor port.
type Wallet struct {
	Address   Address   `json:"address"`
	Owner     Address   `json:"owner"`
	Nonce     uint64    `json:"nonce"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
