// Package taskprep turns a grounded planning task description into the
// fully analyzed form a planner consumes: a causal graph over the
// relevant variables, one domain transition graph per variable, a
// successor-generator decision trie, and a cheap polynomial-solvability
// verdict.
//
// The pipeline is organized under task-specific subpackages:
//
//	entity/      — decoded domain model (Variable, State, Operator, Task)
//	reader/      — parses the wire format into an entity.Task
//	causalgraph/ — builds the causal graph and assigns variable levels
//	stripper/    — drops operators and variables the causal graph found irrelevant
//	dtg/         — builds per-variable domain transition graphs
//	sggen/       — builds the successor-generator trie
//	writer/      — serializes the analyzed task back to the wire format
//	prepro/      — orchestrates the stages above into one Run call
//	cmd/taskprep/ — the command-line entry point
//
// core/ and bfs/ provide the graph storage and traversal the causal
// graph and domain transition graphs are built on.
package taskprep
