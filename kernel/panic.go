package kernel

import (
	"fmt"
	"runtime/debug"
)

// PanicInfo contains details about a recovered task panic.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

func (p PanicInfo) String() string {
	return fmt.Sprintf("task %d panicked: %v", p.TaskID, p.Value)
}

// SetPanicHandler installs a handler for task panics. A panicking task is
// stopped; the other tasks keep running. fn must not panic.
func (k *Kernel) SetPanicHandler(fn func(PanicInfo)) {
	k.onPanic = fn
}

// runTask runs one step and reports false if the task panicked.
func (k *Kernel) runTask(id TaskID, t Task, ctx *Context) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			ok = false
			if k.onPanic != nil {
				k.onPanic(PanicInfo{TaskID: id, Value: v, Stack: debug.Stack()})
			}
		}
	}()
	t.Step(ctx)
	return true
}
