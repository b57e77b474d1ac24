//go:build !dockyarddebug

package entity

const debugAssertions = false
