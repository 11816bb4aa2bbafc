// Package config loads a project's swarm configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.yaml)
//  2. swarm.yaml in the project root, or swarm.toml when there is no yaml file
//  3. BMAD_SWARM_* environment variables, with "__" separating levels
//     (BMAD_SWARM_METHODOLOGY__AUTONOMY=auto)
//  4. explicit overrides from the caller (command-line flags)
//
// The merged tree is decoded into Config and validated.
package config
