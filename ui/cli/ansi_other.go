//go:build !windows

package cli

// terminals outside windows understand ANSI escapes already
func EnableANSI() {}
