package wizard

// Prompt is the copy shown for one question.
type Prompt struct {
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
	Hint        string `json:"hint"`
	Action      string `json:"action"`
}

var prompts = map[Step]Prompt{
	StepBirthday: {
		Question:    "What is your birthday?",
		Placeholder: "MM/DD/YYYY",
		Hint:        "Your age will help us calculate your retirement timeline and benefits.",
		Action:      "Next",
	},
	StepStartDate: {
		Question:    "What day and year did you start working as a teacher paying into the CalSTRS retirement plan?",
		Placeholder: "MM/DD/YYYY",
		Hint:        "Your start date affects your years of service and pension calculations.",
		Action:      "Next",
	},
	StepRetirementAge: {
		Question:    "At what age do you plan on retiring?",
		Placeholder: "Enter age (e.g., 65)",
		Hint:        "Your retirement age impacts your pension benefits and lifestyle planning.",
		Action:      "Next",
	},
	StepSalary: {
		Question:    "What was your salary last year?",
		Placeholder: "Enter amount",
		Hint:        "Your salary helps us project your future pension benefits.",
		Action:      "Create My Avatar",
	},
}

// Prompt returns the copy for the current step. A completed state has no prompt.
func (s State) Prompt() (Prompt, bool) {
	p, ok := prompts[s.Step]
	return p, ok
}
