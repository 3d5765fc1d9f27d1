package tree

import (
	"errors"
	"math"
)

// Sentinel errors for NewLeaves input checks and Config validation.
var (
	// ErrNoLeaves indicates the input to NewLeaves was empty.
	ErrNoLeaves = errors.New("tree: no leaves provided")

	// ErrLengthMismatch indicates NewLeaves' parallel input slices differ
	// in length, or input profiles do not share a common length.
	ErrLengthMismatch = errors.New("tree: profile length mismatch")

	// ErrBadTopHitsSize indicates Config.TopHitsSize was forced to a value < 1.
	ErrBadTopHitsSize = errors.New("tree: TopHitsSize must be >= 1")

	// ErrBadRefreshPeriod indicates Config.RefreshPeriod was forced to a value < 1.
	ErrBadRefreshPeriod = errors.New("tree: RefreshPeriod must be >= 1")

	// ErrBadNNIRounds indicates Config.NNIRounds was forced to a negative value.
	ErrBadNNIRounds = errors.New("tree: NNIRounds must be >= 0")

	// ErrEmptySites indicates a leaf profile had zero aligned sites.
	ErrEmptySites = errors.New("tree: leaf profiles have zero sites")
)

// DefaultRefreshPeriod is how often (in joins) T is rebuilt from scratch
// to bound floating-point drift.
const DefaultRefreshPeriod = 200

// Config is the tree-level configuration record: top-hits bound,
// diagnostic verbosity, T-refresh period, NNI round count, and the
// maximum corrected distance. Build it with DefaultConfig(n0) and
// override fields via the With* functional options, mirroring
// dijkstra.Option/DefaultOptions and flow.FlowOptions.
type Config struct {
	// TopHitsSize is m, the bound on each node's top-hits list.
	// Default: ceil(sqrt(n0)).
	TopHitsSize int

	// Verbose selects diagnostic emission only {0,1,2}; never affects
	// the computed tree.
	Verbose int

	// RefreshPeriod is how many joins occur between full recomputations
	// of T from the active profiles.
	RefreshPeriod int

	// NNIRounds is the number of NNI sweeps to run after the initial
	// topology is built. Default: ceil(log2(n0)) + 1.
	NNIRounds int

	// MaxDistance records the JC-corrected distance ceiling. No stage
	// reads it: profile.JCCorrect always clamps to the fixed
	// profile.MaxDistance constant (3.0), whatever this field holds.
	MaxDistance float64
}

// Option configures a Config before it is finalized.
type Option func(*Config)

// WithTopHitsSize overrides the top-hits bound m. Panics if m < 1: an
// invalid top-hits bound is a programmer error, not a runtime
// condition to recover from (mirrors dijkstra.WithMaxDistance's panic
// on a negative bound).
func WithTopHitsSize(m int) Option {
	return func(c *Config) {
		if m < 1 {
			panic(ErrBadTopHitsSize.Error())
		}
		c.TopHitsSize = m
	}
}

// WithVerbose sets the diagnostic verbosity level (0, 1, or 2).
func WithVerbose(level int) Option {
	return func(c *Config) { c.Verbose = level }
}

// WithRefreshPeriod overrides how many joins occur between full T
// recomputations. Panics if period < 1.
func WithRefreshPeriod(period int) Option {
	return func(c *Config) {
		if period < 1 {
			panic(ErrBadRefreshPeriod.Error())
		}
		c.RefreshPeriod = period
	}
}

// WithNNIRounds overrides the number of post-hoc NNI sweeps. Panics if
// rounds < 0.
func WithNNIRounds(rounds int) Option {
	return func(c *Config) {
		if rounds < 0 {
			panic(ErrBadNNIRounds.Error())
		}
		c.NNIRounds = rounds
	}
}

// WithMaxDistance sets Config.MaxDistance. The value is stored only;
// JC correction still clamps to profile.MaxDistance.
func WithMaxDistance(max float64) Option {
	return func(c *Config) { c.MaxDistance = max }
}

// Validate checks cfg against the shape of the leaf input it will be
// paired with, returning the first error found rather than panicking.
// Unlike the With* options above (an invalid literal value is a
// programmer error in the caller's own code), a bad pairing between
// cfg and live input data is a runtime condition ordinary callers can
// hit and must be able to recover from.
func (c Config) Validate(leafCount, siteLen int) error {
	if leafCount == 0 {
		return ErrNoLeaves
	}
	if siteLen == 0 {
		return ErrEmptySites
	}
	if c.TopHitsSize < 1 {
		return ErrBadTopHitsSize
	}
	if c.RefreshPeriod < 1 {
		return ErrBadRefreshPeriod
	}
	if c.NNIRounds < 0 {
		return ErrBadNNIRounds
	}

	return nil
}

// DefaultConfig returns the defaults for n0 starting leaves: TopHitsSize
// = ceil(sqrt(n0)), RefreshPeriod = 200, NNIRounds = ceil(log2(n0))+1,
// MaxDistance = 3.0, Verbose = 0. Apply opts to override any of these.
func DefaultConfig(n0 int, opts ...Option) Config {
	m := int(math.Ceil(math.Sqrt(float64(n0))))
	if m < 1 {
		m = 1
	}
	nniRounds := 1
	if n0 > 1 {
		nniRounds = int(math.Ceil(math.Log2(float64(n0)))) + 1
	}

	cfg := Config{
		TopHitsSize:   m,
		Verbose:       0,
		RefreshPeriod: DefaultRefreshPeriod,
		NNIRounds:     nniRounds,
		MaxDistance:   3.0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
