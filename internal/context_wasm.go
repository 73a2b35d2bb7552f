//go:build wasm

package internal

// wasm is single-threaded, so a single slot replaces the goid registry.
var globalContext *ExecutionContext

func activeContext() *ExecutionContext {
	return globalContext
}

func setActiveContext(ctx *ExecutionContext) *ExecutionContext {
	prev := globalContext
	globalContext = ctx
	return prev
}
