package reveal

import (
	"fmt"
	"html/template"
	"strconv"
	"time"
)

const (
	Duration = 800 * time.Millisecond
	Easing   = "ease-out"

	// Offset is the hidden-state shift in pixels for up/left/right.
	Offset = 50
	// ZoomScale is the hidden-state scale for zoom.
	ZoomScale = 0.95
)

type Transform struct {
	X, Y    float64
	Scale   float64
	Opacity float64
}

// Shown is the resting state every section animates to.
var Shown = Transform{Scale: 1, Opacity: 1}

// HiddenFor is the starting state for dir.
func HiddenFor(dir Direction) Transform {
	t := Transform{Scale: 1}
	switch dir {
	case Up:
		t.Y = Offset
	case Left:
		t.X = -Offset
	case Right:
		t.X = Offset
	case Zoom:
		t.Scale = ZoomScale
	}
	return t
}

func (t Transform) CSS() string {
	return fmt.Sprintf("opacity:%s;transform:translate(%spx,%spx) scale(%s)",
		num(t.Opacity), num(t.X), num(t.Y), num(t.Scale))
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Current is Shown once the section is visible and its hidden transform
// before that.
func (s *Section) Current() Transform {
	if s.Visible() {
		return Shown
	}
	return HiddenFor(s.dir)
}

// Transition is the CSS transition applied when the section is revealed.
func (s *Section) Transition() string {
	d := num(Duration.Seconds()) + "s " + Easing + " " + num(s.delay.Seconds()) + "s"
	return "transition:opacity " + d + ",transform " + d
}

// Attrs renders the section as HTML attributes for the page script, which
// performs the in-browser observation.
func (s *Section) Attrs() template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(
		`data-reveal="%s" data-reveal-threshold="%s" data-reveal-delay="%d" style="%s;%s"`,
		s.dir, num(s.Threshold()), s.delay.Milliseconds(),
		template.HTMLEscapeString(s.Current().CSS()), s.Transition()))
}

// Stagger returns the delay for the i-th sibling in a group.
func Stagger(base, step time.Duration, i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return base + time.Duration(i)*step
}

// Markup builds an unmounted section and returns its attributes. Templates
// call it as {{reveal "left" 200}}.
func Markup(dir string, delayMS int) (template.HTMLAttr, error) {
	d, err := ParseDirection(dir)
	if err != nil {
		return "", err
	}
	s, err := New(d, DefaultThreshold, time.Duration(delayMS)*time.Millisecond)
	if err != nil {
		return "", err
	}
	return s.Attrs(), nil
}
