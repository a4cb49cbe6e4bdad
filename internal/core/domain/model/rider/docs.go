// Package rider contains the delivery rider aggregate and the CNH driving
// license value object.
//
// A rider is registered with a CNPJ (normalized to digits only), a license,
// and a birth date. Only licenses of type A or A+B qualify a rider to operate
// a motorcycle; this gate applies both at registration and when opening a
// rental. CNPJ and license number uniqueness are checked through injected
// predicates, with the persistence layer holding the authoritative unique
// constraints.
//
// The aggregate owns the rider's rental history and enforces that at most one
// rental is open at a time.
package rider
