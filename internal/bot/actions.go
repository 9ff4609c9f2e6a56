package bot

import (
	"strings"

	"github.com/zargram/pricebot/internal/bot/keyboard"
)

// Action is the closed set of inline-button actions the bot understands.
// Routing switches over it exhaustively, so a new action is a compile-time
// visible addition rather than a stray payload string.
type Action int

const (
	ActionUnknown Action = iota
	ActionBeginEntry
	ActionSendConfirm
	ActionCancel
	ActionReturnToMenu
	ActionDailyReport
)

// ParseAction maps a callback payload to its Action.
func ParseAction(data string) Action {
	// telebot prefixes raw callback data with "\f" for buttons registered
	// through its own handler registry; ours arrive plain, but trim anyway.
	data = strings.TrimSpace(strings.TrimPrefix(data, "\f"))

	switch data {
	case keyboard.DataBeginEntry:
		return ActionBeginEntry
	case keyboard.DataSendConfirm:
		return ActionSendConfirm
	case keyboard.DataCancel:
		return ActionCancel
	case keyboard.DataReturnToMenu:
		return ActionReturnToMenu
	case keyboard.DataDailyReport:
		return ActionDailyReport
	default:
		return ActionUnknown
	}
}

func (a Action) String() string {
	switch a {
	case ActionBeginEntry:
		return "begin_entry"
	case ActionSendConfirm:
		return "send_confirm"
	case ActionCancel:
		return "cancel"
	case ActionReturnToMenu:
		return "return_to_menu"
	case ActionDailyReport:
		return "daily_report"
	default:
		return "unknown"
	}
}
