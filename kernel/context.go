package kernel

// Context provides task-local access to kernel operations for one step.
type Context struct {
	k      *Kernel
	taskID TaskID

	blocked     bool
	blockOn     Endpoint
	blockOnTick bool
	wakeAt      uint64
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// NowTick returns the current kernel tick.
func (c *Context) NowTick() uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.now
}

// TryRecv reads one message from the capability endpoint without blocking.
func (c *Context) TryRecv(epCap Capability) (Message, bool) {
	if c.k == nil || !epCap.valid() || !epCap.canRecv() {
		return Message{}, false
	}
	return c.k.recv(epCap.ep)
}

// BlockOn parks the task until a message arrives on the capability endpoint.
// It takes effect when Step returns.
func (c *Context) BlockOn(epCap Capability) {
	if !epCap.valid() || !epCap.canRecv() {
		return
	}
	c.blocked = true
	c.blockOnTick = false
	c.blockOn = epCap.ep
}

// BlockOnTick parks the task until the next tick.
func (c *Context) BlockOnTick() {
	c.SleepUntil(c.NowTick() + 1)
}

// SleepUntil parks the task until the kernel tick reaches deadline.
func (c *Context) SleepUntil(deadline uint64) {
	c.blocked = true
	c.blockOnTick = true
	c.wakeAt = deadline
}

// Send sends a message from one endpoint to another.
func (c *Context) Send(fromCap, toCap Capability, kind uint16, payload []byte) SendResult {
	if !fromCap.valid() {
		return SendErrInvalidFromCap
	}
	if !fromCap.canSend() {
		return SendErrFromNoSendRight
	}
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(fromCap.ep, toCap.ep, kind, payload)
}

// SendTo sends a message to the capability endpoint.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendTo(toCap Capability, kind uint16, payload []byte) SendResult {
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(0, toCap.ep, kind, payload)
}
