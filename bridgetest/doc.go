// Package bridgetest provides deterministic identities and collaborator
// doubles for testing bridge contract operations.
package bridgetest
