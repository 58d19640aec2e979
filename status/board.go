package status

import "sync/atomic"

// Metric key suffixes, prefixed with the board name
const (
	KeyPhase        = "phase"
	KeyLastTrick    = "last_trick"
	KeySpeed        = "speed"
	KeyCharge       = "charge"
	KeyAirTime      = "air_time"
	KeyBestAirTime  = "best_air_time"
	KeyGrounded     = "grounded"
	KeyPops         = "pops"
	KeyCatches      = "catches"
	KeyBails        = "bails"
	KeyGroundResets = "ground_resets"
	KeySteps        = "steps"
)

// BoardMetrics caches the metric pointers of one board
type BoardMetrics struct {
	Phase     *AtomicString
	LastTrick *AtomicString
	Speed     *AtomicFloat
	Charge    *AtomicFloat // 0..1 of max charge
	AirTime   *AtomicFloat
	BestAir   *AtomicFloat // longest air time of a clean catch
	Grounded  *atomic.Bool

	Pops         *atomic.Int64
	Catches      *atomic.Int64
	Bails        *atomic.Int64
	GroundResets *atomic.Int64
	Steps        *atomic.Int64
}

// NewBoardMetrics registers the metric set for board name, keys are "name.suffix"
func NewBoardMetrics(r *Registry, name string) *BoardMetrics {
	key := func(suffix string) string { return name + "." + suffix }
	return &BoardMetrics{
		Phase:        r.Strings.Get(key(KeyPhase)),
		LastTrick:    r.Strings.Get(key(KeyLastTrick)),
		Speed:        r.Floats.Get(key(KeySpeed)),
		Charge:       r.Floats.Get(key(KeyCharge)),
		AirTime:      r.Floats.Get(key(KeyAirTime)),
		BestAir:      r.Floats.Get(key(KeyBestAirTime)),
		Grounded:     r.Bools.Get(key(KeyGrounded)),
		Pops:         r.Ints.Get(key(KeyPops)),
		Catches:      r.Ints.Get(key(KeyCatches)),
		Bails:        r.Ints.Get(key(KeyBails)),
		GroundResets: r.Ints.Get(key(KeyGroundResets)),
		Steps:        r.Ints.Get(key(KeySteps)),
	}
}
