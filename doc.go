// Package antsys is a small Ant System solver for the travelling-salesman
// problem: a colony of ants builds closed tours over a distance matrix and
// reinforces short ones through a shared pheromone trail.
//
// What's inside:
//
//	matrix/     — dense float64 storage with bounds-checked access and shape validators
//	aco/        — distance model, pheromone trail, tour construction, colony loop
//	config/     — defaults, YAML files and ANTSYS_* environment overrides
//	logging/    — leveled slog logger (info, debug, trace)
//	cmd/antsys/ — command-line runner
//
// Quick start:
//
//	dm, _ := aco.DistanceModelFromRows(rows, true)
//	colony, _ := aco.NewColony(dm, aco.DefaultOptions())
//	res, _ := colony.Run(ctx)
//	fmt.Println(res.Best.Format(nil), res.Best.Length())
//
// Or from the shell:
//
//	go install github.com/katalvlaran/antsys/cmd/antsys@latest
//	antsys 10 --seed 42
package antsys
