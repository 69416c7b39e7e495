package main

import (
	"net"
	"sync"

	"golang.org/x/time/rate"
)

// ipRateLimiters hands out one golang.org/x/time/rate.Limiter per
// remote IP, bursting up to perSecond and refilling at the same rate.
// New IPs get a fresh limiter lazily on first Allow.
type ipRateLimiters struct {
	perSecond int
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
}

func newIPRateLimiters(perSecond int) *ipRateLimiters {
	return &ipRateLimiters{
		perSecond: perSecond,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a new connection from addr's IP should be
// accepted right now.
func (l *ipRateLimiters) Allow(addr net.Addr) bool {
	host := hostOf(addr)
	return l.limiterFor(host).Allow()
}

func (l *ipRateLimiters) limiterFor(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(l.perSecond), l.perSecond)
	l.limiters[host] = lim
	return lim
}

func hostOf(addr net.Addr) string {
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
