// Package analytics computes the derived board entities: member workload,
// sprint velocity, sprint burndown and task lead/cycle time. Every function
// is a pure aggregation over records the caller has just read from the
// store; nothing is cached between calls.
package analytics
