package agents

// Method is the reasoning strategy a SQL candidate is prompted with.
type Method string

const (
	MethodQueryPlan        Method = "query_plan"
	MethodStepByStep       Method = "step_by_step"
	MethodDivideAndConquer Method = "divide_and_conquer"
)

var methods = []Method{MethodQueryPlan, MethodStepByStep, MethodDivideAndConquer}

// temperatureBands are cycled in round-robin groups: candidates 0..2 draw
// from the low band, 3..5 from the mid band, 6..8 from the high band, then
// the cycle repeats.
var temperatureBands = [3][3]float64{
	{0.1, 0.2, 0.3},
	{0.5, 0.6, 0.7},
	{0.8, 0.9, 1.0},
}

// singleCandidateTemperature is used when only one candidate is requested.
const singleCandidateTemperature = 0.5

// EvaluatorTemperature is fixed so verdicts stay reproducible.
const EvaluatorTemperature = 0.2

// PlanCandidate returns the method and temperature for candidate index i out
// of n. Deterministic: the same (i, n) always yields the same plan.
func PlanCandidate(i, n int) (Method, float64) {
	method := methods[i%len(methods)]
	if n == 1 {
		return method, singleCandidateTemperature
	}
	band := temperatureBands[(i/3)%3]
	return method, band[i%3]
}
