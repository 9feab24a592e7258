// Package ddm provides the core drift diffusion simulation primitives.
//
// A drift diffusion model accumulates noisy evidence toward one of two
// symmetric decision boundaries:
//
//	dE = v*dt + sigma*sqrt(dt)*N(0,1)
//
// with a decision committed once |E| >= a. The package defines:
//
//   - [Params]: immutable per-trial parameter set
//   - [Trial]: mutable state of one evidence-accumulation run
//   - [Simulator]: the stepping rule and decision check
//   - [NoiseSource]: injectable randomness for reproducible runs
//
// # Example
//
//	sim, _ := ddm.New(ddm.DefaultParams(), ddm.NewGaussianNoise(42))
//	trial, _ := sim.Run(ctx)
//
// # Thread Safety
//
// Simulator and Trial instances are NOT thread-safe. For concurrent
// trials, give each goroutine its own Simulator with an independently
// seeded noise source (see the ensemble package).
package ddm
