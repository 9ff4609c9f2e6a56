package conversation

import "testing"

func TestIsTransitionAllowed(t *testing.T) {
	testCases := []struct {
		name     string
		from     Step
		to       Step
		expected bool
	}{
		{name: "idle to buy price", from: StepIdle, to: StepBuyPrice, expected: true},
		{name: "buy price to sell price", from: StepBuyPrice, to: StepSellPrice, expected: true},
		{name: "sell price to confirm", from: StepSellPrice, to: StepConfirm, expected: true},
		{name: "confirm to idle", from: StepConfirm, to: StepIdle, expected: true},
		{name: "idle to sell price invalid", from: StepIdle, to: StepSellPrice, expected: false},
		{name: "idle to confirm invalid", from: StepIdle, to: StepConfirm, expected: false},
		{name: "buy price to confirm invalid", from: StepBuyPrice, to: StepConfirm, expected: false},
		{name: "confirm to buy price invalid", from: StepConfirm, to: StepBuyPrice, expected: false},
		{name: "unknown step to buy price invalid", from: Step("unknown"), to: StepBuyPrice, expected: false},
		{name: "cancel from any step", from: StepSellPrice, to: StepIdle, expected: true},
		{name: "cancel from unknown step", from: Step("whatever"), to: StepIdle, expected: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if actual := IsTransitionAllowed(tc.from, tc.to); actual != tc.expected {
				t.Errorf("IsTransitionAllowed(%s -> %s) = %t, expected %t", tc.from, tc.to, actual, tc.expected)
			}
		})
	}
}
