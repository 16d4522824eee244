package plexus

// InjectMove queues a synthetic pointer position. Queued positions are
// consumed one per frame at the start of Driver.Frame, ahead of the step,
// exactly as if the pointer source had reported them.
func (d *Driver) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, Vec2{x, y})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY),
// linearly interpolated so the whole sequence consumes `frames` frames.
// Minimum frames is 2 (start + end).
func (d *Driver) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectMove(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		d.InjectMove(x, y)
	}
	d.InjectMove(toX, toY)
}

// PendingInjections returns the number of queued synthetic positions.
func (d *Driver) PendingInjections() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one queued position and feeds it through
// MovePointer. Returns true if a position was consumed.
func (d *Driver) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	d.MovePointer(evt.X, evt.Y)
	return true
}
