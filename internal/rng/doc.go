// Package rng provides the seeded pseudo-random kernel that drives every
// generator in dx. All nondeterminism in the generation pipeline funnels
// through a single *RNG, so a fixed seed reproduces output byte for byte.
package rng
