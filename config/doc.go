// Package config loads run files: HCL documents that name one or more
// search configurations for the crucible engine and, optionally, the grid
// file to read.
//
//	input = "day17.txt"
//
//	run "part1" {
//	  min_run = ordinary.min_run
//	  max_run = ordinary.max_run
//	}
//
//	run "part2" {
//	  min_run   = 4
//	  max_run   = 10
//	  heuristic = "manhattan"
//	  path      = true
//	}
//
// Two objects are predefined for expressions: ordinary (0..3) and ultra
// (4..10), each with min_run and max_run attributes.
package config
