//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var activeContexts sync.Map

func activeContext() *ExecutionContext {
	if ctx, ok := activeContexts.Load(goid.Get()); ok {
		return ctx.(*ExecutionContext)
	}

	return nil
}

// setActiveContext swaps the calling goroutine's active context, returning
// the previous one so callers can restore it.
func setActiveContext(ctx *ExecutionContext) *ExecutionContext {
	gid := goid.Get()
	prev := activeContext()

	if ctx == nil {
		activeContexts.Delete(gid)
	} else {
		activeContexts.Store(gid, ctx)
	}

	return prev
}
