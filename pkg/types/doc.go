// Package types defines the entity types, configuration snapshot, and
// standard errors for the shortlink storage system.
package types
