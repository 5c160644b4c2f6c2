package abyss

// Driver gates a World behind a pause flag. The host calls Tick once per
// display refresh; while paused, ticks and their input are dropped, and
// resuming does not replay the frames that were skipped.
type Driver struct {
	world  *World
	paused bool
	ticks  uint64 // Host refreshes seen, including paused ones
}

// NewDriver wraps a world.
func NewDriver(w *World) *Driver {
	return &Driver{world: w}
}

// World returns the driven world.
func (d *Driver) World() *World {
	return d.world
}

// Tick advances the world by one frame unless paused or finished.
// It reports whether a step ran.
func (d *Driver) Tick(in Input) bool {
	d.ticks++
	if d.paused || d.world.Over() {
		return false
	}
	d.world.Step(in)
	return true
}

// Pause stops producing frames. State is left untouched.
func (d *Driver) Pause() {
	d.paused = true
}

// Resume continues exactly where the world stopped.
func (d *Driver) Resume() {
	d.paused = false
}

// TogglePause flips the gate and returns the new paused state.
func (d *Driver) TogglePause() bool {
	d.paused = !d.paused
	return d.paused
}

// Paused reports whether the gate is closed.
func (d *Driver) Paused() bool {
	return d.paused
}

// Ticks returns the number of host refreshes seen.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}
