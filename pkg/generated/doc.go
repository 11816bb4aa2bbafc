// Package generated writes files owned by bmad-swarm and detects when a user
// has edited them since.
//
// Every managed file carries a one-line header embedding the fingerprint of
// the body that follows it:
//
//	<!-- bmad-generated:1a2b3c4d -->   documents (markdown, text)
//	// bmad-generated:1a2b3c4d         scripts
//
// Scripts that start with a shebang keep it on line 1 and get the header on
// line 2. The fingerprint is always taken over the body as rendered, shebang
// included, so regenerating unchanged input reproduces the file byte for
// byte.
//
// Drift detection recomputes the fingerprint over what follows the header.
// A file without a recognizable header is never reported as modified.
package generated
