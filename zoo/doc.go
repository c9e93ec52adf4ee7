// Package zoo holds the fixed animal dataset behind the zoo guide tools.
//
// The zoo package provides:
// - The embedded animal fixture (species, name, age, enclosure, trail)
// - Case-insensitive lookups by species and by name
// - The distinct species listing
package zoo
