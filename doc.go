// Package beehive is a Simulated Bee Colony optimizer for ordering problems:
// find a cheap path through every symbol of a problem exactly once.
//
// 🚀 What is beehive?
//
//	A small, deterministic library and CLI that brings together:
//		• Problem models: the lettered demo cities and explicit cost tables
//		• The colony: inactive, active and scout bees sharing one random stream
//		• Recruitment: the waggle dance copies good paths to waiting bees
//		• Parallel colonies: independent hives with derived seeds, one result
//
// ✨ Why choose beehive?
//
//   - Reproducible: one seed, one run, on every platform
//   - Observable: zap logging and a per-cycle progress hook
//   - Safe: role counts and the inactive registry are checked every dance
//
// Under the hood, everything is organized under these packages:
//
//	problem/            Symbol, the Model interface, Cities and Table
//	hive/               Candidate, Bee, the Hive and SolveColonies
//	internal/config/    beecolony.yml loading and defaults
//	internal/printer/   colored CLI output and the progress bar
//	cmd/beecolony/      the solve and paths commands
//
// Quick example:
//
//	cities, _ := problem.NewCities(20)
//	best, err := hive.Solve(cities, hive.DefaultConfig())
//
//	go install github.com/katalvlaran/beehive/cmd/beecolony@latest
package beehive
