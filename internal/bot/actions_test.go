package bot

import (
	"testing"

	"github.com/zargram/pricebot/internal/bot/keyboard"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		data     string
		expected Action
	}{
		{keyboard.DataBeginEntry, ActionBeginEntry},
		{keyboard.DataSendConfirm, ActionSendConfirm},
		{keyboard.DataCancel, ActionCancel},
		{keyboard.DataReturnToMenu, ActionReturnToMenu},
		{keyboard.DataDailyReport, ActionDailyReport},
		{"\f" + keyboard.DataBeginEntry, ActionBeginEntry},
		{"  " + keyboard.DataCancel + "  ", ActionCancel},
		{"", ActionUnknown},
		{"bogus_payload", ActionUnknown},
	}

	for _, tc := range tests {
		if got := ParseAction(tc.data); got != tc.expected {
			t.Errorf("ParseAction(%q) = %s, want %s", tc.data, got, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionBeginEntry, "begin_entry"},
		{ActionSendConfirm, "send_confirm"},
		{ActionCancel, "cancel"},
		{ActionReturnToMenu, "return_to_menu"},
		{ActionDailyReport, "daily_report"},
		{ActionUnknown, "unknown"},
		{Action(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tc.action, got, tc.expected)
		}
	}
}
