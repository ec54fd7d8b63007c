package game

// Health tracks current and maximum hit points for robots and weapon
// instances. Every mutation keeps 0 <= Current <= Maximum.
type Health struct {
	Current int `json:"current"`
	Maximum int `json:"maximum"`
}

// NewHealth returns a Health at full capacity.
func NewHealth(maximum int) Health {
	if maximum < 0 {
		maximum = 0
	}
	return Health{Current: maximum, Maximum: maximum}
}

// Remaining returns the current hit points.
func (h *Health) Remaining() int { return h.Current }

// Alive reports whether any hit points remain.
func (h *Health) Alive() bool { return h.Current > 0 }

// Full reports whether the tracker is at maximum.
func (h *Health) Full() bool { return h.Current >= h.Maximum }

// ApplyDamage subtracts amount, never going below zero. Negative amounts
// are treated as zero.
func (h *Health) ApplyDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	h.clamp()
}

// Recharge adds amount up to Maximum. Negative amounts are treated as zero.
func (h *Health) Recharge(amount int) {
	if amount < 0 {
		amount = 0
	}
	h.Current += amount
	h.clamp()
}

// Disable drops the tracker to zero without going through ApplyDamage.
// It is how a weapon or robot "plays dead".
func (h *Health) Disable() { h.Current = 0 }

// Restore refills the tracker to Maximum.
func (h *Health) Restore() { h.Current = h.Maximum }

func (h *Health) clamp() {
	if h.Maximum < 0 {
		h.Maximum = 0
	}
	if h.Current > h.Maximum {
		h.Current = h.Maximum
	}
	if h.Current < 0 {
		h.Current = 0
	}
}
