// SPDX-License-Identifier: MIT

package tfgraph

// Observer receives notifications about graph activity, typically to feed
// metrics. Implementations must be cheap and must not call back into the graph.
type Observer interface {
	// PathResolved is called once per successful chain lookup.
	PathResolved(hops int, cached bool)

	// QueryFailed is called when GetTransform or GetTransformAt fails.
	QueryFailed(err error)

	// ValidationWarning is called for every violation repaired under a lenient policy.
	ValidationWarning(from, to string, err error)

	// CacheInvalidated is called when a mutation drops the chain cache.
	CacheInvalidated()
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) PathResolved(int, bool) {}
func (NopObserver) QueryFailed(error) {}
func (NopObserver) ValidationWarning(string, string, error) {}
func (NopObserver) CacheInvalidated() {}
