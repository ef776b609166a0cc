package hud

// ScaledSize is the size of a w x h image scaled by factor. same reports a
// factor of 0 or 1, which leaves the image as it is.
func ScaledSize(w, h int, factor float64) (sw, sh int, same bool) {
	if factor == 0 || factor == 1 {
		return w, h, true
	}
	return int(float64(w) * factor), int(float64(h) * factor), false
}

// ResizeTarget is the size an image of srcW x srcH gets when resized to
// w x h. Sides below one pixel become one pixel. same reports that the
// target equals the source.
func ResizeTarget(srcW, srcH, w, h int) (tw, th int, same bool) {
	tw, th = max(w, 1), max(h, 1)
	return tw, th, tw == srcW && th == srcH
}
