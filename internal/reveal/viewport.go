package reveal

import "sync"

// BackToTopOffset is how far the page must be scrolled before the
// back-to-top control is offered.
const BackToTopOffset = 300

// Viewport is an Observer driven by explicit scroll positions. It plays the
// role of the browser viewport for server-side staging and tests.
type Viewport struct {
	mu     sync.Mutex
	top    float64
	height float64
	nextID int
	subs   map[int]*watch
}

type watch struct {
	target    Rect
	threshold float64
	fn        func(Entry)
	last      bool
}

func NewViewport(height float64) *Viewport {
	return &Viewport{height: height, subs: make(map[int]*watch)}
}

func (v *Viewport) Observe(target Rect, threshold float64, fn func(Entry)) Subscription {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	w := &watch{target: target, threshold: threshold, fn: fn}
	e := v.entry(w)
	w.last = e.Intersecting
	v.subs[id] = w
	v.mu.Unlock()

	fn(e)
	return &subscription{v: v, id: id}
}

// ScrollTo moves the viewport and delivers an entry to every subscription
// whose intersecting state changed.
func (v *Viewport) ScrollTo(top float64) {
	v.mu.Lock()
	v.top = top
	v.mu.Unlock()
	v.flush()
}

// Resize changes the viewport height and re-evaluates every subscription.
func (v *Viewport) Resize(height float64) {
	v.mu.Lock()
	v.height = height
	v.mu.Unlock()
	v.flush()
}

func (v *Viewport) ScrollY() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.top
}

// BackToTop reports whether the back-to-top control should be visible.
func (v *Viewport) BackToTop() bool { return v.ScrollY() > BackToTopOffset }

// Active is the number of live subscriptions.
func (v *Viewport) Active() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

func (v *Viewport) flush() {
	type delivery struct {
		fn func(Entry)
		e  Entry
	}
	v.mu.Lock()
	var out []delivery
	for _, w := range v.subs {
		e := v.entry(w)
		if e.Intersecting != w.last {
			w.last = e.Intersecting
			out = append(out, delivery{w.fn, e})
		}
	}
	v.mu.Unlock()

	// Callbacks run without the lock so they may observe or cancel.
	for _, d := range out {
		d.fn(d.e)
	}
}

// entry must be called with v.mu held.
func (v *Viewport) entry(w *watch) Entry {
	r := Ratio(w.target, Rect{Top: v.top, Height: v.height})
	return Entry{Ratio: r, Intersecting: r > 0 && r >= w.threshold}
}

// Ratio is the fraction of target's height that lies inside view.
func Ratio(target, view Rect) float64 {
	lo := max(target.Top, view.Top)
	hi := min(target.Bottom(), view.Bottom())
	if target.Height <= 0 {
		if target.Top >= view.Top && target.Top <= view.Bottom() {
			return 1
		}
		return 0
	}
	if hi <= lo {
		return 0
	}
	return (hi - lo) / target.Height
}

type subscription struct {
	v    *Viewport
	id   int
	once sync.Once
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		s.v.mu.Lock()
		delete(s.v.subs, s.id)
		s.v.mu.Unlock()
	})
}
