//go:build dockyarddebug

package entity

const debugAssertions = true
