// Package camera provides a 2D camera system for viewport control.
package camera

// Camera maps the origin-centered playfield onto the screen.
// World coordinates have +y up; screen coordinates have +y down.
type Camera struct {
	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Field dimensions (full extents, centered on the origin)
	FieldW, FieldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera that shows the whole field at the given zoom.
func New(viewportW, viewportH, fieldW, fieldH, zoom float32) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		FieldW:    fieldW,
		FieldH:    fieldH,
		MinZoom:   0.25,
		MaxZoom:   8.0,
	}
	if zoom <= 0 {
		zoom = c.FitZoom()
	}
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	return c
}

// FitZoom returns the largest zoom at which the whole field fits the
// viewport.
func (c *Camera) FitZoom() float32 {
	zx := c.ViewportW / c.FieldW
	zy := c.ViewportH / c.FieldH
	if zy < zx {
		return zy
	}
	return zx
}

// WorldToScreen converts world coordinates to screen coordinates.
// The world origin lands at the viewport center and +y flips down.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + wx*c.Zoom
	sy = c.ViewportH/2 - wy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = (sx - c.ViewportW/2) / c.Zoom
	wy = (c.ViewportH/2 - sy) / c.Zoom
	return wx, wy
}

// IsVisible returns true if a box at (wx, wy) with the given half-extent
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, halfExtent float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + halfExtent
	halfH := c.ViewportH/(2*c.Zoom) + halfExtent
	return absf(wx) <= halfW && absf(wy) <= halfH
}

// Resize updates viewport dimensions, refitting the zoom when the field
// no longer fits.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	if fit := c.FitZoom(); c.Zoom > fit {
		c.Zoom = clamp(fit, c.MinZoom, c.MaxZoom)
	}
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible
// area as (minX, minY, maxX, maxY).
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return -halfW, -halfH, halfW, halfH
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
