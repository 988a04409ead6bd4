package reveal

// Rect is a region's vertical extent in page coordinates (pixels).
type Rect struct {
	Top    float64
	Height float64
}

func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Entry is one observation of a target against the viewport.
type Entry struct {
	Ratio        float64 // fraction of the target inside the viewport
	Intersecting bool    // Ratio has reached the subscription's threshold
}

// Subscription is a live observation. Cancel is safe to call more than once.
type Subscription interface {
	Cancel()
}

// Observer watches a target and calls fn whenever the target crosses
// threshold. Implementations must deliver one entry on the first
// observation pass, so targets that start on screen are reported without
// any scrolling.
type Observer interface {
	Observe(target Rect, threshold float64, fn func(Entry)) Subscription
}
