// Package initialize implements `bmad-swarm init`: it writes a project's
// swarm.yaml and project.yaml, creates the artifact tree and generates every
// managed file.
package initialize
