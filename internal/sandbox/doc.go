// Package sandbox implements the particle simulation core: a bounded
// play area owning a collection of particles, advanced one fixed or
// frame-measured timestep at a time.
//
// A [Sandbox] is driven either by an interactive frame loop (see the
// gui and tui packages) or by a [Runner] for headless runs with
// emitters, metrics and observers. In both cases the per-frame order is
// the same: Advance, then spawns, then selection changes, then render.
//
// There is deliberately no particle-to-particle interaction: particles
// overlap and pass through each other, including Wall particles.
package sandbox
