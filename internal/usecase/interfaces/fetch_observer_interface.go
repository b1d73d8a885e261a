package interfaces

// IFetchObserver receives operability signals from the snapshot loader and
// the dashboard usecases. The prometheus registry implements it; tests and
// callers that don't care pass NopObserver.
type IFetchObserver interface {
	FetchAttempt(resource string)
	FetchRetry(resource string)
	FetchDegraded(resource string)
	DashboardBuilt(role string, seconds float64)
}

// NopObserver discards every signal.
type NopObserver struct{}

var _ IFetchObserver = NopObserver{}

func (NopObserver) FetchAttempt(string)          {}
func (NopObserver) FetchRetry(string)            {}
func (NopObserver) FetchDegraded(string)         {}
func (NopObserver) DashboardBuilt(string, float64) {}
