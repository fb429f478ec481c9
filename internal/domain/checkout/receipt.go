package checkout

import "time"

// Receipt records a confirmed purchase. The hash is the confirmation token
// supplied by the payment collaborator; no on-chain verification happens here.
type Receipt struct {
	Hash         string
	ProductID    int64
	BuyerAddress string
	Amount       string
	Timestamp    time.Time
	Verified     bool
}
