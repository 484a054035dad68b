// Package uniuri generates random strings good for use as content record
// identifiers and session tokens. Identifiers are opaque and collision
// resistant, drawn from crypto/rand.
package uniuri
