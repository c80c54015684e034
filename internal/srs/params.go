package srs

// Params holds the FSRS model parameters. The weight vector is
// configuration, not a hard-coded literal: a tuned set can be swapped in
// without touching the transition logic.
type Params struct {
	// Weights is the FSRS v4.5 weight vector.
	// w0-w3: initial stability per rating.
	// w4-w5: initial difficulty.
	// w6-w7: difficulty update and mean reversion.
	// w8-w10: stability growth on success.
	// w11-w14: stability after a lapse.
	// w15-w16: hard penalty and easy bonus.
	// w17-w18: short-term (same-day) stability, unused here.
	Weights [19]float64

	// RequestRetention is the target recall probability used to derive
	// the next interval from stability.
	RequestRetention float64

	// MaximumIntervalDays caps scheduled intervals.
	MaximumIntervalDays int
}

// Decay and factor define the power forgetting curve
// R(t) = (1 + factor*t/S)^decay. With these constants the interval at
// 90% retention equals the stability.
const (
	decay  = -0.5
	factor = 19.0 / 81.0
)

// DefaultParams returns the published FSRS v4.5 default parameter set.
func DefaultParams() Params {
	return Params{
		Weights: [19]float64{
			0.4072, 1.1829, 3.1262, 15.4722, 7.2102,
			0.5316, 1.0651, 0.0234, 1.616, 0.1544,
			1.0824, 1.9813, 0.0953, 0.2975, 2.2042,
			0.2407, 2.9466, 0.5034, 0.6567,
		},
		RequestRetention:    0.9,
		MaximumIntervalDays: 365,
	}
}
