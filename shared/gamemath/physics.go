package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if current < target {
		if current+step > target {
			return target
		}
		return current + step
	}
	if current-step < target {
		return target
	}
	return current - step
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise. Zero maps to fallback.
func Sign(v, fallback float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return fallback
}
