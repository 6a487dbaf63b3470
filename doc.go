// Package gatsp finds short round trips through a set of cities with a
// generational genetic algorithm.
//
// 🚀 What is gatsp?
//
//	A small, dependency-light toolkit that brings together:
//		• Distance tables: Euclidean, precomputed, indexed by city
//		• Genetic solver: tournament selection, order crossover, swap mutation
//		• Experiments: concurrent parameter sweeps with repeat statistics
//		• Exact baseline: Held–Karp for maps of up to 16 cities
//		• Reports: text summaries and CSV tables
//
// Everything is organized under these packages:
//
//	matrix/       flat row-major Dense storage
//	distance/     city sets and the symmetric distance Table
//	ga/           tours, operators and the Solver
//	exact/        Held–Karp optimum and gap
//	experiment/   parallel sweeps over parameter trials
//	report/       text and CSV output
//	config/       TOML/YAML configuration
//	cmd/gatsp/    the command-line tool
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
// is the shortest tour of a 10×10 square (length 40); the crossing order
// A→C→B→D→A measures 48.28.
//
//	go install github.com/katalvlaran/gatsp/cmd/gatsp@latest
package gatsp
