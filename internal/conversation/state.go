// Package conversation tracks each admin's progress through the price-entry
// wizard. A user with no stored entry is idle; every terminal action removes
// the entry so no stale state survives a finished or abandoned flow.
package conversation

import "time"

// Step represents a stage of the price-entry wizard.
type Step string

const (
	// StepIdle is never stored; it is the virtual state of a user without an
	// entry and the endpoint of every terminal transition.
	StepIdle Step = "idle"
	// StepBuyPrice indicates the bot is waiting for the buy price.
	StepBuyPrice Step = "buy_price"
	// StepSellPrice indicates the bot is waiting for the sell price.
	StepSellPrice Step = "sell_price"
	// StepConfirm indicates a rendered preview is awaiting confirmation.
	StepConfirm Step = "confirm"
)

// Entry captures one user's in-flight price entry.
//
// Invariants: BuyPrice is set once Step has passed StepBuyPrice; SellPrice
// and Preview are set only at StepConfirm.
type Entry struct {
	UserID    int64     `json:"user_id"`
	Step      Step      `json:"step"`
	BuyPrice  int64     `json:"buy_price"`
	SellPrice int64     `json:"sell_price"`
	Preview   string    `json:"preview"`
	UpdatedAt time.Time `json:"updated_at"`
}
