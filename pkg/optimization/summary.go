// Package optimization provides shared data structures for optimization results.
package optimization

// Summary captures the result of a single retirement age search.
type Summary struct {
	Scope          string   `json:"scope"`
	TargetName     string   `json:"targetName"`
	Field          string   `json:"field"`
	Original       int      `json:"original"`
	Value          int      `json:"value"`
	Target         float64  `json:"target"`
	MonthlyPension float64  `json:"monthlyPension"`
	Headroom       float64  `json:"headroom"`
	Iterations     int      `json:"iterations"`
	Converged      bool     `json:"converged"`
	Notes          []string `json:"notes,omitempty"`
	TargetDisplay  string   `json:"targetDisplay,omitempty"`
	PensionDisplay string   `json:"pensionDisplay,omitempty"`
}
