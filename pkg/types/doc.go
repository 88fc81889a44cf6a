// Package types defines the Store and Registry interfaces, the mobile contact
// entities and their transfer shapes, and the standard error types for the
// contacts registry.
package types
