// Package motorcycle contains the fleet-unit aggregate of the rental domain.
//
// A Motorcycle is identified by a caller-supplied id and carries a normalized
// Mercosul plate. The plate is globally unique among active motorcycles; this
// package validates format and normalization while uniqueness is enforced by
// the application layer against the persistence layer.
//
// The hasRentals flag marks rental occupancy. It is toggled by the rental
// creation and closing workflows and blocks deletion while set.
package motorcycle
