// Package enumtab implements named enumeration tables for closed-set
// settings values.
//
// A Table maps ordinals (contiguous, starting at 0) to text labels.
// Settings constrained to an enumeration store the ordinal; the label is
// what operators see and type. Label comparison is case-insensitive
// within a table; labels need not be unique across tables.
//
// Tables are fixed at construction and never mutated, so a Set can be
// shared by reference across any number of concurrent readers without
// locking.
package enumtab
