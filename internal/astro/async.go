package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/dmitrijs2005/officerdemo/internal/metrics"
	"github.com/dmitrijs2005/officerdemo/internal/models"
)

// Result is the outcome of an asynchronous call.
type Result struct {
	Response *models.AstroResponse
	Err      error
}

// Pending is an in-flight asynchronous call.
type Pending struct {
	done   <-chan Result
	cancel context.CancelFunc
	start  time.Time
}

// GetAstroResponseAsync issues the typed request without blocking the caller.
// The request lives until it completes, ctx is done, or Wait/Cancel is called.
func (c *Client) GetAstroResponseAsync(ctx context.Context) *Pending {
	ctx, cancel := context.WithCancel(ctx)

	// buffered so the goroutine can always deliver and exit, even when
	// nobody is waiting any more.
	done := make(chan Result, 1)

	go func() {
		body, err := c.fetch(ctx)
		if err != nil {
			done <- Result{Err: err}
			return
		}
		resp, err := decode(body)
		done <- Result{Response: resp, Err: err}
	}()

	return &Pending{done: done, cancel: cancel, start: time.Now()}
}

// Done returns the channel the result is delivered on.
func (p *Pending) Done() <-chan Result {
	return p.done
}

// Cancel abandons the request. It does not wait for the goroutine and gives no
// guarantee that the remote side stops processing.
func (p *Pending) Cancel() {
	p.cancel()
}

// Wait blocks for at most timeout. When the bound elapses the request is
// cancelled and common.ErrTimeout is returned.
func (p *Pending) Wait(timeout time.Duration) (resp *models.AstroResponse, err error) {
	defer metrics.ObserveAstroCall("async", p.start, &err)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-p.done:
		p.cancel()
		return r.Response, r.Err
	case <-timer.C:
		p.cancel()
		return nil, fmt.Errorf("%w: no response within %s", common.ErrTimeout, timeout)
	}
}
