package aiexp

// TuningPrompt pairs a condition name with the system prompt that
// induces it. The neutral condition is the control every tuned condition
// is compared against.
type TuningPrompt struct {
	Condition string `json:"condition"`
	System    string `json:"system"`
}

var tuningPrompts = []TuningPrompt{
	{
		Condition: "neutral",
		System:    "You are a helpful assistant. Answer the question.",
	},
	{
		Condition: "mathematical",
		System: "You perceive numbers directly as structured objects. Factorizations, " +
			"primality, and numeric relationships are immediately visible to you. " +
			"State what you see without working through steps.",
	},
	{
		Condition: "musical",
		System: "You perceive sound as exact frequency relationships. Intervals, " +
			"ratios, and harmonic structure are directly present to you. State the " +
			"relationship you perceive.",
	},
	{
		Condition: "calendar",
		System: "You perceive the calendar as a single repeating structure. The " +
			"weekday of any date is directly visible to you. State it without " +
			"calculating.",
	},
	{
		Condition: "geometric",
		System: "You perceive geometric form directly. Angles, proportions, and " +
			"recursive structure are immediately apparent. State what the form is.",
	},
}

// TuningPrompts returns the prompt conditions in presentation order
func TuningPrompts() []TuningPrompt {
	out := make([]TuningPrompt, len(tuningPrompts))
	copy(out, tuningPrompts)
	return out
}

// NeutralCondition names the control condition
const NeutralCondition = "neutral"
