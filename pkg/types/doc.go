// Package types holds the interfaces shared across bmad-swarm packages.
package types
