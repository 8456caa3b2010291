// Package stats holds one fighter's health, hyper meter, stun and combo
// bookkeeping. A Ledger has a single writer per tick: its own fighter's state
// machine for decay and meter spending, and the opposing hit resolver for
// damage.
package stats

import "math"

// Event is a ledger notification delivered to subscribers.
type Event int

const (
	EventDeath Event = iota
	EventDizzyStart
	EventDizzyEnd
)

func (e Event) String() string {
	switch e {
	case EventDeath:
		return "death"
	case EventDizzyStart:
		return "dizzy_start"
	case EventDizzyEnd:
		return "dizzy_end"
	}
	return "unknown"
}

// Config holds the tuning values of a ledger.
type Config struct {
	MaxHealth float64
	MaxHyper  float64
	MaxStun   float64

	// Damage scale is ScalingFactor^comboCount, never below MinScalingCap.
	ScalingFactor float64
	MinScalingCap float64

	// Seconds without a hit or stun before the combo count resets and stun
	// starts to recover.
	ComboResetTime   float64
	StunRecoveryRate float64 // stun per second
}

// DefaultConfig returns the values every character uses unless its move
// file overrides them.
func DefaultConfig() Config {
	return Config{
		MaxHealth:        1000,
		MaxHyper:         300,
		MaxStun:          100,
		ScalingFactor:    0.9,
		MinScalingCap:    0.3,
		ComboResetTime:   1.0,
		StunRecoveryRate: 20,
	}
}

// Scale returns the damage multiplier for a hit landing at the given combo
// count.
func (c Config) Scale(comboCount int) float64 {
	if comboCount < 0 {
		comboCount = 0
	}
	return math.Max(math.Pow(c.ScalingFactor, float64(comboCount)), c.MinScalingCap)
}

// Stats is a read-only copy of a ledger's values.
type Stats struct {
	Health     float64
	MaxHealth  float64
	Hyper      float64
	MaxHyper   float64
	Stun       float64
	MaxStun    float64
	ComboCount int
	Dizzy      bool
	Dead       bool
}

// HealthRatio returns health as a fraction of max health.
func (s Stats) HealthRatio() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return s.Health / s.MaxHealth
}

// Ledger tracks one fighter's combat resources. Once the fighter is dead
// every mutation is ignored.
type Ledger struct {
	cfg Config

	health float64
	hyper  float64
	stun   float64
	combo  int
	dizzy  bool
	dead   bool

	// seconds since the last hit or stun; shared by combo reset and stun
	// recovery
	idle float64

	observers []func(Event)
}

// New creates a ledger with full health and full meter.
func New(cfg Config) *Ledger {
	l := &Ledger{cfg: cfg}
	l.Reset()
	return l
}

// Reset restores spawn values for a new round. Subscribers are kept.
func (l *Ledger) Reset() {
	l.health = l.cfg.MaxHealth
	l.hyper = l.cfg.MaxHyper
	l.stun = 0
	l.combo = 0
	l.dizzy = false
	l.dead = false
	l.idle = 0
}

// Subscribe registers fn for death and dizzy notifications. Observers run
// synchronously in registration order.
func (l *Ledger) Subscribe(fn func(Event)) {
	l.observers = append(l.observers, fn)
}

func (l *Ledger) emit(e Event) {
	for _, fn := range l.observers {
		fn(e)
	}
}

// ApplyHit applies an unblocked hit scaled by the current combo count, then
// increments the combo. It returns the damage actually applied.
func (l *Ledger) ApplyHit(baseDamage, meterGainOnHit float64) float64 {
	if l.dead {
		return 0
	}
	applied := baseDamage * l.cfg.Scale(l.combo)
	l.combo++
	l.idle = 0
	l.addHyper(meterGainOnHit)
	l.damage(applied)
	return applied
}

// ApplyBlockedHit subtracts unscaled chip damage and grants meter. Combo and
// stun are untouched.
func (l *Ledger) ApplyBlockedHit(chipDamage, meterGainOnBlock float64) {
	if l.dead {
		return
	}
	l.addHyper(meterGainOnBlock)
	l.damage(chipDamage)
}

func (l *Ledger) damage(amount float64) {
	if amount < 0 {
		amount = 0
	}
	l.health = math.Max(l.health-amount, 0)
	if l.health == 0 {
		l.dead = true
		l.emit(EventDeath)
	}
}

// AddStun accumulates stun. While dizzy it does nothing. Reaching max stun
// starts the dizzy state. It also restarts the idle clock shared with the
// combo counter.
func (l *Ledger) AddStun(amount float64) {
	if l.dead || l.dizzy {
		return
	}
	l.idle = 0
	l.stun = math.Min(l.stun+math.Max(amount, 0), l.cfg.MaxStun)
	if l.stun >= l.cfg.MaxStun {
		l.dizzy = true
		l.emit(EventDizzyStart)
	}
}

// ResetStun ends the dizzy state and clears stun.
func (l *Ledger) ResetStun() {
	if l.dead {
		return
	}
	wasDizzy := l.dizzy
	l.dizzy = false
	l.stun = 0
	if wasDizzy {
		l.emit(EventDizzyEnd)
	}
}

// AddMeter grants hyper meter, clamped to max.
func (l *Ledger) AddMeter(amount float64) {
	if l.dead {
		return
	}
	l.addHyper(amount)
}

func (l *Ledger) addHyper(amount float64) {
	l.hyper = math.Min(l.hyper+math.Max(amount, 0), l.cfg.MaxHyper)
}

// TrySpendMeter subtracts amount if the meter covers it. Otherwise nothing
// changes and it returns false.
func (l *Ledger) TrySpendMeter(amount float64) bool {
	if l.dead || amount < 0 || l.hyper < amount {
		return false
	}
	l.hyper -= amount
	return true
}

// Tick advances the idle clock. Past ComboResetTime the combo count resets
// and, unless dizzy, stun recovers.
func (l *Ledger) Tick(dt float64) {
	if l.dead {
		return
	}
	l.idle += dt
	if l.idle <= l.cfg.ComboResetTime {
		return
	}
	l.combo = 0
	if !l.dizzy {
		l.stun = math.Max(l.stun-l.cfg.StunRecoveryRate*dt, 0)
	}
}

func (l *Ledger) Health() float64 { return l.health }
func (l *Ledger) Hyper() float64 { return l.hyper }
func (l *Ledger) Stun() float64 { return l.stun }
func (l *Ledger) ComboCount() int { return l.combo }
func (l *Ledger) IsDizzy() bool { return l.dizzy }
func (l *Ledger) IsDead() bool { return l.dead }
func (l *Ledger) Config() Config { return l.cfg }

// Snapshot returns a copy of the current values.
func (l *Ledger) Snapshot() Stats {
	return Stats{
		Health:     l.health,
		MaxHealth:  l.cfg.MaxHealth,
		Hyper:      l.hyper,
		MaxHyper:   l.cfg.MaxHyper,
		Stun:       l.stun,
		MaxStun:    l.cfg.MaxStun,
		ComboCount: l.combo,
		Dizzy:      l.dizzy,
		Dead:       l.dead,
	}
}
