package kernel

const (
	maxTasks     = 16
	maxEndpoints = 16
	mailboxSlots = 8
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies an IPC destination.
type Endpoint uint8

// Capability grants access to an IPC endpoint.
//
// It is opaque by construction (no exported fields).
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) valid() bool { return c.rights != 0 }

func (c Capability) Valid() bool { return c.valid() }

func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	if !c.valid() {
		return Capability{}
	}
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 128

// Message is a fixed-size IPC envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
}

// Payload returns the valid part of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrInvalidFromCap
	SendErrInvalidToCap
	SendErrFromNoSendRight
	SendErrToNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrInvalidFromCap:
		return "invalid from capability"
	case SendErrInvalidToCap:
		return "invalid to capability"
	case SendErrFromNoSendRight:
		return "from capability has no send right"
	case SendErrToNoSendRight:
		return "to capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a cooperative unit of execution. Step must return promptly; a task
// that has nothing to do blocks through its Context.
type Task interface {
	Step(*Context)
}

type endpointState struct {
	q        mailbox
	waitMask uint32
}

type taskState struct {
	task     Task
	runnable bool
	dead     bool
	waiting  Endpoint
	wakeAt   uint64
}

// Kernel is a single-threaded cooperative scheduler plus IPC router.
//
// All methods must be called from one goroutine. Tasks never run
// concurrently, so task state needs no locking.
type Kernel struct {
	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint

	tasks     [maxTasks]taskState
	taskCount TaskID

	rr TaskID

	tickWaitMask uint32
	now          uint64

	onPanic func(PanicInfo)
}

// New creates a kernel instance.
func New() *Kernel {
	return &Kernel{}
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
// It returns an invalid capability once all endpoints are in use.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	if k.endpointCount >= maxEndpoints || rights == 0 {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	return Capability{ep: ep, rights: rights}
}

// AddTask registers a task and returns its ID. ok is false when the task
// table is full.
func (k *Kernel) AddTask(t Task) (id TaskID, ok bool) {
	if k.taskCount >= maxTasks || t == nil {
		return 0, false
	}
	id = k.taskCount
	k.taskCount++
	k.tasks[id] = taskState{task: t, runnable: true}
	return id, true
}

// Now returns the last tick passed to TickTo.
func (k *Kernel) Now() uint64 { return k.now }

// Step runs at most one runnable task step. It reports whether a task ran.
func (k *Kernel) Step() bool {
	if k.taskCount == 0 {
		return false
	}

	for i := TaskID(0); i < k.taskCount; i++ {
		id := (k.rr + i) % k.taskCount
		st := &k.tasks[id]
		if st.task == nil || st.dead || !st.runnable {
			continue
		}

		k.rr = (id + 1) % k.taskCount
		ctx := &Context{k: k, taskID: id}
		if !k.runTask(id, st.task, ctx) {
			st.dead = true
			st.runnable = false
			return true
		}

		if ctx.blocked {
			k.block(id, ctx)
		}
		return true
	}
	return false
}

// RunUntilIdle steps tasks until none is runnable or limit steps have run.
// It returns the number of steps taken.
func (k *Kernel) RunUntilIdle(limit int) int {
	n := 0
	for n < limit && k.Step() {
		n++
	}
	return n
}

func (k *Kernel) block(id TaskID, ctx *Context) {
	st := &k.tasks[id]
	if ctx.blockOnTick {
		if ctx.wakeAt <= k.now {
			return
		}
		st.runnable = false
		st.wakeAt = ctx.wakeAt
		k.tickWaitMask |= 1 << id
		return
	}

	ep := ctx.blockOn
	if ep >= k.endpointCount {
		return
	}
	if k.endpoints[ep].q.len() > 0 {
		return
	}
	st.runnable = false
	st.waiting = ep
	k.endpoints[ep].waitMask |= 1 << id
}

// Tick advances time by one tick.
func (k *Kernel) Tick() { k.TickTo(k.now + 1) }

// TickTo advances time to seq and wakes tasks whose sleep deadline passed.
// Time never moves backwards.
func (k *Kernel) TickTo(seq uint64) {
	if seq > k.now {
		k.now = seq
	}
	wait := k.tickWaitMask
	if wait == 0 {
		return
	}

	for tid := TaskID(0); tid < k.taskCount; tid++ {
		if wait&(1<<tid) == 0 {
			continue
		}
		st := &k.tasks[tid]
		if st.wakeAt > k.now {
			continue
		}
		st.runnable = true
		k.tickWaitMask &^= 1 << tid
	}
}

// Post delivers a message from outside any task, such as a host event
// bridge. The message From field is set to 0 (unknown).
func (k *Kernel) Post(toCap Capability, kind uint16, payload []byte) SendResult {
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return k.send(0, toCap.ep, kind, payload)
}

func (k *Kernel) send(from Endpoint, to Endpoint, kind uint16, payload []byte) SendResult {
	if to >= k.endpointCount {
		return SendErrNoEndpoint
	}
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}

	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)

	ep := &k.endpoints[to]
	if !ep.q.push(msg) {
		return SendErrQueueFull
	}

	wait := ep.waitMask
	if wait == 0 {
		return SendOK
	}

	for tid := TaskID(0); tid < k.taskCount; tid++ {
		if wait&(1<<tid) == 0 {
			continue
		}
		st := &k.tasks[tid]
		if !st.dead {
			st.runnable = true
		}
		ep.waitMask &^= 1 << tid
	}
	return SendOK
}

func (k *Kernel) recv(to Endpoint) (Message, bool) {
	if to >= k.endpointCount {
		return Message{}, false
	}
	return k.endpoints[to].q.pop()
}
