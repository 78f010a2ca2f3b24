// Package scheduler drives the sizing search for every technology
// combination of a house. Combinations are independent: each one owns its
// cost surface and best specification, so they are fanned out to a bounded
// pool of workers and joined in the fixed combination order.
package scheduler
