package routing

import "context"

// Pending is the eventual result of a route computation. Results computed
// without a live provider are already resolved when returned.
type Pending struct {
	done  chan struct{}
	route Route
	err   error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func resolvedPending(route Route, err error) *Pending {
	p := newPending()
	p.resolve(route, err)
	return p
}

// resolve must be called exactly once
func (p *Pending) resolve(route Route, err error) {
	p.route = route
	p.err = err
	close(p.done)
}

// Done is closed once the result is available
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Ready reports whether the result is available without blocking
func (p *Pending) Ready() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until the route is available or ctx ends. Abandoning a
// Pending has no side effects; the late result is simply dropped.
func (p *Pending) Await(ctx context.Context) (Route, error) {
	select {
	case <-p.done:
		return p.route, p.err
	case <-ctx.Done():
		return Route{}, ctx.Err()
	}
}
