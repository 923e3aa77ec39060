package config

import "runtime"

// Worker count resolution chain (highest priority first):
//  1. CLI flag (--workers)
//  2. Environment variable (U128CALC_WORKERS)
//  3. Adaptive hardware estimation (this file)

// maxAdaptiveWorkers caps the adaptive worker estimate. Verification shards
// are CPU-bound, so running more shards than cores only adds scheduling
// overhead.
const maxAdaptiveWorkers = 16

// ResolveWorkers returns the effective number of verification shards for the
// given configuration, falling back to a hardware-based estimate when the
// user did not specify a count.
func ResolveWorkers(cfg AppConfig) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return EstimateOptimalWorkers()
}

// EstimateOptimalWorkers provides a heuristic estimate of the optimal shard
// count without running benchmarks. The corpus check is pure CPU work with
// no shared state between shards, so one shard per core is close to optimal
// up to a cap.
func EstimateOptimalWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU > maxAdaptiveWorkers:
		return maxAdaptiveWorkers
	default:
		return numCPU
	}
}
