package anneal

import "math/rand/v2"

// Phase is the lifecycle stage of a State.
type Phase int

const (
	PhaseInitialized Phase = iota
	PhaseRunning
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseRunning:
		return "running"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// State is the search state of one run. It is owned by the run and must
// not be shared.
type State[S any] struct {
	Phase       Phase
	Current     S
	CurrentCost float64
	Best        S
	BestCost    float64
	InitialCost float64
	Iteration   uint64
	Accepted    uint64

	// Initial is the starting temperature; Temperature is the one used by
	// the most recent step.
	Initial     float64
	Temperature float64
}

// NewState creates an Initialized state from the starting point and its cost.
func NewState[S any](init S, cost, temperature float64) *State[S] {
	return &State[S]{
		Phase:       PhaseInitialized,
		Current:     init,
		CurrentCost: cost,
		Best:        init,
		BestCost:    cost,
		InitialCost: cost,
		Initial:     temperature,
		Temperature: temperature,
	}
}

// Step performs one annealing iteration: propose at the scheduled
// temperature, apply the acceptance test, track the best state and advance
// the counter. Step on a terminated state does nothing.
func (st *State[S]) Step(eval Evaluator[S], neighbor NeighborFunc[S], schedule Schedule, rng *rand.Rand) {
	if st.Phase == PhaseTerminated {
		return
	}
	st.Phase = PhaseRunning

	temp := schedule.Temperature(st.Initial, st.Iteration)
	st.Temperature = temp

	candidate := neighbor(st.Current, temp, rng)
	cost := eval(candidate)

	if Accept(st.CurrentCost, cost, temp, rng) {
		st.Current = candidate
		st.CurrentCost = cost
		st.Accepted++
	}
	if st.CurrentCost < st.BestCost {
		st.Best = st.Current
		st.BestCost = st.CurrentCost
	}
	st.Iteration++
}

// Terminate ends the run.
func (st *State[S]) Terminate() {
	st.Phase = PhaseTerminated
}

// Result extracts the surviving values of the run.
func (st *State[S]) Result() Result[S] {
	return Result[S]{
		Best:        st.Best,
		BestCost:    st.BestCost,
		InitialCost: st.InitialCost,
		Iterations:  st.Iteration,
		Accepted:    st.Accepted,
		Temperature: st.Temperature,
	}
}
