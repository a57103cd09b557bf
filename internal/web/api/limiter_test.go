package api

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lonng/muscore/pkg/errutil"
	"github.com/stretchr/testify/assert"
)

func TestLimiter(t *testing.T) {
	assert.Nil(t, NewLimiter(0, 10))
	var none *Limiter
	assert.Nil(t, none.Before())

	l := NewLimiter(1, 2)
	assert.True(t, l.Allow("10.0.0.1:1000"))
	assert.True(t, l.Allow("10.0.0.1:1001"))
	assert.False(t, l.Allow("10.0.0.1:1002"))
	// 不同来源互不影响
	assert.True(t, l.Allow("10.0.0.2:1000"))
	assert.True(t, l.Allow("10.0.0.3"))

	r := httptest.NewRequest("POST", "/v1/score", nil)
	r.RemoteAddr = "10.0.0.1:2000"
	_, err := l.Before()(context.Background(), r)
	assert.Equal(t, errutil.ErrFrequencyLimited, err)
}

func TestLimiterPrune(t *testing.T) {
	l := NewLimiter(1, 1)
	for i := 0; i < limiterMaxIdles; i++ {
		l.visitors[fmt.Sprintf("10.1.%d.%d", i/256, i%256)] = &visitor{
			lastSeen: time.Now().Add(-2 * limiterIdle),
		}
	}
	assert.True(t, l.Allow("10.0.0.1:1"))
	assert.Len(t, l.visitors, 1)
}
