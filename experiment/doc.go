// Package experiment runs parameter sweeps of the genetic solver: a list of
// trials, each repeated with independent random streams, executed on a
// bounded worker pool and summarized per trial.
//
// Every run draws from ga.DeriveRand(seed, stream) with a stream id derived
// from its (trial, repeat) position, so a sweep is reproducible for a given
// seed no matter how runs are scheduled across workers.
package experiment
