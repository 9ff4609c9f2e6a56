package conversation

// validTransitions contains the permitted forward transitions of the wizard.
var validTransitions = map[Step][]Step{
	StepIdle:      {StepBuyPrice},
	StepBuyPrice:  {StepSellPrice},
	StepSellPrice: {StepConfirm},
	StepConfirm:   {StepIdle},
}

// IsTransitionAllowed reports whether moving from one step to another is
// valid. Returning to idle is always legal: cancel and return-to-menu may
// interrupt the wizard at any stage.
func IsTransitionAllowed(from, to Step) bool {
	if to == StepIdle {
		return true
	}

	for _, step := range validTransitions[from] {
		if step == to {
			return true
		}
	}

	return false
}
