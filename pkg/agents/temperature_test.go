package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanCandidate_SingleCandidate(t *testing.T) {
	method, temp := PlanCandidate(0, 1)
	assert.Equal(t, MethodQueryPlan, method)
	assert.Equal(t, 0.5, temp)
}

func TestPlanCandidate_Banding(t *testing.T) {
	// Twelve candidates walk the three bands and wrap around.
	wantTemps := []float64{
		0.1, 0.2, 0.3, // low band
		0.5, 0.6, 0.7, // mid band
		0.8, 0.9, 1.0, // high band
		0.1, 0.2, 0.3, // wrap
	}
	wantMethods := []Method{
		MethodQueryPlan, MethodStepByStep, MethodDivideAndConquer,
		MethodQueryPlan, MethodStepByStep, MethodDivideAndConquer,
		MethodQueryPlan, MethodStepByStep, MethodDivideAndConquer,
		MethodQueryPlan, MethodStepByStep, MethodDivideAndConquer,
	}
	for i := 0; i < 12; i++ {
		method, temp := PlanCandidate(i, 12)
		assert.Equal(t, wantMethods[i], method, "method for candidate %d", i)
		assert.Equal(t, wantTemps[i], temp, "temperature for candidate %d", i)
	}
}

func TestPlanCandidate_SmallCounts(t *testing.T) {
	for _, n := range []int{2, 3, 9} {
		for i := 0; i < n; i++ {
			method1, temp1 := PlanCandidate(i, n)
			method2, temp2 := PlanCandidate(i, n)
			assert.Equal(t, method1, method2, "plan must be deterministic")
			assert.Equal(t, temp1, temp2)
			assert.GreaterOrEqual(t, temp1, 0.1)
			assert.LessOrEqual(t, temp1, 1.0)
		}
	}
}
