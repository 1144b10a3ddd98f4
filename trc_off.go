//go:build !civil_debug

package civiltime

type DefaultTracer struct{}

func debugEnter(_ ...any) {}
func debugExit(_ ...any)  {}
func debugCodec(_ ...any) {}
func debugZone(_ ...any)  {}
func debugParse(_ ...any) {}
func debugCarry(_ ...any) {}
