package obj

// Pacer converts fixed-rate ticks into steps spaced by a variable delay. It
// replaces sleeping: each tick adds its duration and a step is due once the
// accumulated time reaches the delay.
type Pacer struct {
	elapsed float64
}

// Tick adds dt seconds and reports whether a step is due given delay. At
// most one step is released per tick; the remainder carries over so the
// average spacing matches delay when delay is a multiple of dt.
func (p *Pacer) Tick(dt, delay float64) bool {
	p.elapsed += dt
	// small epsilon so 0.05 accumulated from 1/60 steps lands on tick 3
	if p.elapsed+1e-9 < delay {
		return false
	}
	p.elapsed -= delay
	if p.elapsed < 0 || p.elapsed >= delay {
		p.elapsed = 0
	}
	return true
}

func (p *Pacer) Reset() { p.elapsed = 0 }
