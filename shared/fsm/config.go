package fsm

// Config holds the timings shared by every character. Per-character values
// come from the move table.
type Config struct {
	// Seconds after an attack starts during which a chain may continue.
	ComboWindow float64

	KnockbackDuration       float64
	AerialKnockbackDuration float64
	DizzyDuration           float64

	FastFallMultiplier float64
	// Jumping turns into Falling once gravity has taken more than this off
	// the jump impulse.
	JumpEpsilon float64

	LauncherThreshold float64

	// Debug logs dropped inputs and failed supers.
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		ComboWindow:             0.8,
		KnockbackDuration:       0.35,
		AerialKnockbackDuration: 0.5,
		DizzyDuration:           2.0,
		FastFallMultiplier:      5,
		JumpEpsilon:             1,
		LauncherThreshold:       300,
	}
}
