// Package viewport maintains the visible window over a line buffer: the first
// visible line, the window height, and the cursor offset of the selected line
// within the window. Every mutation ends in Clamp, so the selection is always
// a valid buffer index (or 0,0 over an empty buffer).
package viewport

// Viewport is the visible window state. The selected line is Top+Cursor.
type Viewport struct {
	Top    int // first visible line index
	Height int // window height in rows, >= 1 once sized
	Cursor int // selection offset within the window, [0, Height)
}

// Selected returns the buffer index of the selected line.
func (v *Viewport) Selected() int { return v.Top + v.Cursor }

// SetHeight applies a new window height (resize) and re-clamps.
func (v *Viewport) SetHeight(h, total int) {
	if h < 1 {
		h = 1
	}
	v.Height = h
	v.Clamp(total)
}

// Clamp restores the viewport invariants for a buffer of total lines.
// Calling it twice in a row is a no-op the second time.
func (v *Viewport) Clamp(total int) {
	if v.Height <= 0 {
		return
	}
	maxTop := total - v.Height
	if maxTop < 0 {
		maxTop = 0
	}
	if v.Top < 0 {
		v.Top = 0
	}
	if v.Top > maxTop {
		v.Top = maxTop
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= v.Height {
		v.Cursor = v.Height - 1
	}
	if v.Selected() >= total {
		if total == 0 {
			v.Top, v.Cursor = 0, 0
			return
		}
		// Pin the selection to the last line.
		last := total - 1
		v.Top = last - (v.Height - 1)
		if v.Top < 0 {
			v.Top = 0
		}
		v.Cursor = last - v.Top
	}
}

// Move shifts the selection one line up (delta < 0) or down (delta > 0).
// Within the window only Cursor changes; at the window edge Top shifts by one
// so the content scrolls smoothly instead of re-centering. Moving past either
// end of the buffer is a no-op.
func (v *Viewport) Move(delta, total int) {
	switch {
	case delta < 0:
		if v.Cursor > 0 {
			v.Cursor--
		} else if v.Top > 0 {
			v.Top--
		}
	case delta > 0:
		if v.Selected()+1 < total {
			if v.Cursor+1 < v.Height {
				v.Cursor++
			} else {
				v.Top++
			}
		}
	}
}

// Page shifts Top by a page (Height-1, minimum 1) in the given direction.
// The cursor offset is deliberately left alone; Clamp pulls the selection
// back into range when the page lands past the end.
func (v *Viewport) Page(delta, total int) {
	page := v.Height - 1
	if page < 1 {
		page = 1
	}
	if delta < 0 {
		v.Top -= page
	} else {
		v.Top += page
	}
	v.Clamp(total)
}

// Scroll shifts the window by delta rows, keeping the selection on the same
// buffer line while it stays visible; once it would leave the window the
// selection rides the window edge.
func (v *Viewport) Scroll(delta, total int) {
	sel := v.Selected()
	maxTop := total - v.Height
	if maxTop < 0 {
		maxTop = 0
	}
	v.Top += delta
	if v.Top < 0 {
		v.Top = 0
	}
	if v.Top > maxTop {
		v.Top = maxTop
	}
	v.Cursor = sel - v.Top
	v.Clamp(total)
}

// CenterOn places the selection on index with the window centered around it
// where possible. Used by goto and search jumps.
func (v *Viewport) CenterOn(index, total int) {
	v.Top = index - v.Height/2
	if v.Top < 0 {
		v.Top = 0
	}
	v.Cursor = index - v.Top
	v.Clamp(total)
}
