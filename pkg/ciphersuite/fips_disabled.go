//go:build !fips
// +build !fips

// Package ciphersuite: this file is compiled when the "fips" build tag is
// NOT specified. In standard mode, all three named ciphersuites are usable.
package ciphersuite

// FIPSMode reports whether the binary was built in FIPS mode. When false,
// CheckFIPSCompliance accepts every named ciphersuite.
func FIPSMode() bool { return false }
