package desktop

// TransactionOp is a single queued operation against a workspace
// protocol's transaction (spec.md §4.8): an opcode, the resource that
// requested it, and its payload. destroySignal lets Transaction notify
// the operation's source if the transaction is cleared (the client
// disconnected, say) before it is ever drained.
type TransactionOp struct {
	Opcode  string
	Source  any
	Payload any

	onDestroy func()
}

// Transaction is an append-only ordered queue of operations staged
// against one ext-workspace/cosmic-workspace commit, per spec.md §4.8.
// Operations are appended as client requests arrive and drained in
// insertion order when the transaction commits; Clear discards
// whatever is still queued and runs each operation's destroy
// notification, for when the transaction's owner (e.g. a disconnecting
// client) goes away first.
type Transaction struct {
	ops []TransactionOp
}

// NewTransaction creates an empty transaction.
func NewTransaction() *Transaction { return &Transaction{} }

// Append queues op. onDestroy, if non-nil, runs if Clear discards this
// operation before Drain reaches it.
func (t *Transaction) Append(opcode string, source, payload any, onDestroy func()) {
	t.ops = append(t.ops, TransactionOp{Opcode: opcode, Source: source, Payload: payload, onDestroy: onDestroy})
}

// Len reports how many operations are currently queued.
func (t *Transaction) Len() int { return len(t.ops) }

// Drain removes every queued operation in insertion order, calling
// apply for each, then clears the queue. It is the caller's
// responsibility to coalesce the "done" broadcast that follows a
// drain (spec.md §4.8/§8 invariant 8) — see idleDoneCoalescer below.
func (t *Transaction) Drain(apply func(TransactionOp)) {
	ops := t.ops
	t.ops = nil
	for _, op := range ops {
		apply(op)
	}
}

// Clear discards every queued operation without applying it, running
// each operation's destroy notification first.
func (t *Transaction) Clear() {
	ops := t.ops
	t.ops = nil
	for _, op := range ops {
		if op.onDestroy != nil {
			op.onDestroy()
		}
	}
}

// idleDoneCoalescer batches repeated requests to broadcast a
// workspace-protocol "done" event into a single idle-scheduled
// callback, per spec.md §4.8/§8 invariant 8: committing several
// workspace changes within the same event-loop iteration produces one
// "done", not one per change.
type idleDoneCoalescer struct {
	scheduled bool
	schedule  func(func())
}

// newIdleDoneCoalescer creates a coalescer that uses schedule (e.g. an
// event loop's idle-task queue) to defer the actual broadcast.
func newIdleDoneCoalescer(schedule func(func())) *idleDoneCoalescer {
	return &idleDoneCoalescer{schedule: schedule}
}

// RequestDone arranges for fire to run once on the next idle pass,
// collapsing any number of calls made before that pass runs into one.
func (c *idleDoneCoalescer) RequestDone(fire func()) {
	if c.scheduled {
		return
	}
	c.scheduled = true
	c.schedule(func() {
		c.scheduled = false
		fire()
	})
}
