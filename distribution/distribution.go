// Package distribution implements continuous probability distributions
// on top of the special-function kernels in package function.
//
// Construction is the one recoverable failure mode: constructors return
// ErrBadParams for out-of-domain parameters. Everything past
// construction treats out-of-domain arguments as programmer errors and
// panics, matching package function.
package distribution

import "errors"

// ErrBadParams is returned by constructors when a distribution
// parameter is NaN or outside its domain.
var ErrBadParams = errors.New("distribution: bad parameters")

// Source supplies the randomness a sampler consumes: uniform [0, 1)
// draws and standard normal draws. Both *rand.Rand and *rng.RNG
// satisfy it. The sampler borrows the source for the duration of one
// call only; sharing a source across goroutines is the caller's
// concern.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

// Continuous is the evaluation surface shared by the continuous
// distributions in this package.
type Continuous interface {
	Pdf(x float64) float64
	LnPdf(x float64) float64
	Cdf(x float64) float64
	Min() float64
	Max() float64
	Sample(src Source) float64
}
