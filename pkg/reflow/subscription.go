package reflow

// subscriptionOwner is the registry a subscription detaches from.
type subscriptionOwner interface {
	cancelSubscription(id uint64)
}

// Subscription is the handle returned by Value.Subscribe. It removes the
// associated listener when cancelled.
type Subscription struct {
	id    uint64
	owner subscriptionOwner
}

// Cancel removes the listener from its value. Cancelling twice, or
// cancelling a handle whose listener is already gone, is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.owner == nil {
		return
	}
	s.owner.cancelSubscription(s.id)
}

// Dispose implements Disposable so subscriptions can be adopted by a Scope.
func (s *Subscription) Dispose() {
	s.Cancel()
}
