// Package signal generates deterministic test signals (sine, impulse,
// white noise) from an explicit sample rate. It backs the filter tests
// and the empirical response measurement in measure/response.
package signal
