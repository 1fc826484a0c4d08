//go:build fips
// +build fips

// Package ciphersuite: this file is compiled when the "fips" build tag is
// specified. In FIPS mode, CheckFIPSCompliance and Suite.DeriveKeyPair
// reject the ciphersuites whose traditional side is not a NIST curve.
package ciphersuite

// FIPSMode reports whether the binary was built in FIPS mode. When true,
// CheckFIPSCompliance rejects ciphersuites whose traditional side is not a
// NIST curve.
func FIPSMode() bool { return true }
