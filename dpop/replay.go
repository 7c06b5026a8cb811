package dpop

import (
	"sync"
	"time"
)

// ReplayGuard is a single-process, in-memory cache of seen proof "jti"
// values, grounded on the NonceCache in the retrieved BrettM86/coves DPoP
// verifier. It is a convenience, not a requirement: callers needing a
// durable or distributed replay store (explicitly out of scope for this
// library, per RFC 9449 section 11.1's replay-prevention guidance) should
// use their own and simply not construct a ReplayGuard, mirroring coves's
// own NewDPoPVerifierWithoutReplayProtection constructor pairing.
type ReplayGuard struct {
	mu      sync.Mutex
	seen    map[string]time.Time
	maxAge  time.Duration
	cleanup time.Duration
	stop    chan struct{}
	once    sync.Once
}

// NewReplayGuard returns a ReplayGuard retaining each jti for maxAge and
// starts a background goroutine that sweeps expired entries every
// maxAge/2. Callers must call Stop when done with the guard to release
// that goroutine.
func NewReplayGuard(maxAge time.Duration) *ReplayGuard {
	g := &ReplayGuard{
		seen:    make(map[string]time.Time),
		maxAge:  maxAge,
		cleanup: maxAge / 2,
		stop:    make(chan struct{}),
	}
	go g.sweepLoop()
	return g
}

// Check records jti as seen and returns ErrReplayed if it was already
// recorded within the retention window; otherwise it returns nil.
func (g *ReplayGuard) Check(jti string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if expiry, ok := g.seen[jti]; ok && expiry.After(now) {
		return ErrReplayed
	}

	g.seen[jti] = now.Add(g.maxAge)
	return nil
}

// Predicate returns a Predicate that runs Check against the proof's "jti"
// claim, for use alongside Method/TargetURI/... in Verify.
func (g *ReplayGuard) Predicate() Predicate {
	return func(p *Proof) error {
		jti, ok := p.claims.ID()
		if !ok {
			return ErrMissingClaims
		}
		return g.Check(jti)
	}
}

// Size returns the number of entries currently retained, for tests and
// monitoring.
func (g *ReplayGuard) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}

// Stop stops the background sweep goroutine. Safe to call more than once.
func (g *ReplayGuard) Stop() {
	g.once.Do(func() {
		close(g.stop)
	})
}

func (g *ReplayGuard) sweepLoop() {
	if g.cleanup <= 0 {
		return
	}

	ticker := time.NewTicker(g.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.sweep()
		case <-g.stop:
			return
		}
	}
}

func (g *ReplayGuard) sweep() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	for jti, expiry := range g.seen {
		if expiry.Before(now) {
			delete(g.seen, jti)
		}
	}
}
