// Package pipeline fans contigs out to annotation workers and hands the
// results back to a single visit callback in input order.
package pipeline
