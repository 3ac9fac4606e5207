//go:build !rtvdebug

package rtv

// validateEnabled is false in the default build; see validate_debug.go.
const validateEnabled = false
