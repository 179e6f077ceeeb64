package watch

import "time"

// firing is a timer expiry for path. gen identifies the touch that armed the
// timer, so an expiry overtaken by a later touch can be recognised.
type firing struct {
	path string
	gen  uint64
}

type pendingTimer struct {
	timer *time.Timer
	gen   uint64
}

// debouncer coalesces touches per path. Only the owning goroutine calls
// touch, accept and stop; timer callbacks only send on fire.
type debouncer struct {
	delay   time.Duration
	fire    chan firing
	done    <-chan struct{}
	pending map[string]pendingTimer
	seq     uint64
}

func newDebouncer(delay time.Duration, done <-chan struct{}) *debouncer {
	return &debouncer{
		delay:   delay,
		fire:    make(chan firing),
		done:    done,
		pending: make(map[string]pendingTimer),
	}
}

// touch (re)arms the timer of path. A previous timer that already expired
// may still deliver its firing; accept discards it.
func (d *debouncer) touch(path string) {
	if p, ok := d.pending[path]; ok {
		p.timer.Stop()
	}
	d.seq++
	f := firing{path: path, gen: d.seq}
	d.pending[path] = pendingTimer{
		timer: time.AfterFunc(d.delay, func() {
			select {
			case d.fire <- f:
			case <-d.done:
			}
		}),
		gen: f.gen,
	}
}

// accept reports whether f is the latest firing of its path and clears the
// path if so.
func (d *debouncer) accept(f firing) bool {
	p, ok := d.pending[f.path]
	if !ok || p.gen != f.gen {
		return false
	}
	delete(d.pending, f.path)
	return true
}

// stop cancels every armed timer. Callbacks already running return once done
// is closed.
func (d *debouncer) stop() {
	for path, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, path)
	}
}
