// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/panic_guard.go
// Summary: Restores the terminal before a panic reaches the runtime.

package editor

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"
)

// PanicGuard runs terminal teardown on panic and optionally appends the stack
// trace to a file.
type PanicGuard struct {
	path string
	mu   sync.Mutex
}

// NewPanicGuard constructs a guard that writes to path if non-empty.
func NewPanicGuard(path string) *PanicGuard {
	return &PanicGuard{path: path}
}

// Recover must be deferred directly. On panic it calls teardown, records the
// panic, and panics again with the original value.
func (p *PanicGuard) Recover(context string, teardown func()) {
	r := recover()
	if r == nil {
		return
	}
	if teardown != nil {
		teardown()
	}
	p.logPanic(context, r)
	panic(r)
}

func (p *PanicGuard) logPanic(context string, r interface{}) {
	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, false)
	stack := buf[:n]
	log.Printf("panic in %s: %v\n%s", context, r, stack)
	if p.path == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	f, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("panic: unable to write panic log: %v", err)
		return
	}
	defer f.Close()
	ts := time.Now().Format(time.RFC3339Nano)
	fmt.Fprintf(f, "[%s] panic in %s: %v\n%s\n", ts, context, r, stack)
}
