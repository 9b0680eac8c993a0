package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/chart"
)

// Loader keeps at most one fetch in flight. Concurrent requests for the
// same source share one fetch; a request for a different source cancels
// the previous fetch, whose callers then receive ErrStale. The zero value
// is ready to use.
type Loader struct {
	group singleflight.Group

	mu       sync.Mutex
	seq      uint64
	latest   *fetch // fetch serving the most recent request
	inflight *fetch
}

// fetch is one call to Source.Load. Its id keeps a restarted fetch of the
// same source from joining the cancelled one.
type fetch struct {
	key    string
	id     string
	ctx    context.Context
	cancel context.CancelFunc
}

// Load fetches src, joining an in-flight fetch of the same source.
func (l *Loader) Load(ctx context.Context, src Source) (*chart.Spec, error) {
	f := l.begin(ctx, src.Key())

	ch := l.group.DoChan(f.id, func() (any, error) {
		return src.Load(f.ctx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if l.finish(f) {
			chart.Logger().Debug("ingest: discarded stale result", slog.String("source", f.key))
			return nil, ErrStale
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*chart.Spec), nil
	}
}

// begin returns the fetch serving a request for key, joining the in-flight
// fetch of the same source or cancelling one for another source.
func (l *Loader) begin(ctx context.Context, key string) *fetch {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f := l.inflight; f != nil && f.key == key {
		l.latest = f
		return f
	}
	if f := l.inflight; f != nil {
		chart.Logger().Debug("ingest: cancelling superseded fetch",
			slog.String("source", f.key), slog.String("by", key))
		f.cancel()
		l.group.Forget(f.id)
	}
	l.seq++
	// Detached from ctx: joined callers share the fetch.
	fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f := &fetch{key: key, id: fmt.Sprintf("%s#%d", key, l.seq), ctx: fctx, cancel: cancel}
	l.latest, l.inflight = f, f
	return f
}

// finish releases f and reports whether its result is stale, that is,
// whether a later request is served by another fetch.
func (l *Loader) finish(f *fetch) (stale bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inflight == f {
		l.inflight = nil
	}
	return l.latest != f
}
