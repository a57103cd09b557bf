package api

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/nex"
	"golang.org/x/time/rate"
)

const (
	limiterIdle     = 5 * time.Minute
	limiterMaxIdles = 1024
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter throttles requests per client IP.
type Limiter struct {
	sync.Mutex
	limit    rate.Limit
	burst    int
	visitors map[string]*visitor
}

// NewLimiter allows each client perSecond requests per second with bursts
// of burst. A non-positive rate disables limiting and returns nil.
func NewLimiter(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		visitors: map[string]*visitor{},
	}
}

// Allow reports whether a request from addr may proceed.
func (l *Limiter) Allow(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	now := time.Now()
	l.Lock()
	defer l.Unlock()

	v, ok := l.visitors[host]
	if !ok {
		if len(l.visitors) >= limiterMaxIdles {
			l.prune(now)
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[host] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (l *Limiter) prune(now time.Time) {
	for host, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdle {
			delete(l.visitors, host)
		}
	}
}

func (l *Limiter) filter(ctx context.Context, r *http.Request) (context.Context, error) {
	if !l.Allow(r.RemoteAddr) {
		logger.Warnf("request limited, RemoteAddr=%s URL=%s", r.RemoteAddr, r.RequestURI)
		return ctx, errutil.ErrFrequencyLimited
	}
	return ctx, nil
}

// Before returns the nex filter, nil when l is nil.
func (l *Limiter) Before() nex.BeforeFunc {
	if l == nil {
		return nil
	}
	return l.filter
}
