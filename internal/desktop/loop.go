package desktop

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/yaenergy/estrogenwl/internal/wlog"
)

// Loop is the single-threaded cooperative event loop described in
// spec.md §5: every domain callback in this package runs on the loop's
// goroutine, so none of the types above need their own locking. Idle
// tasks queued during the current pass run before the loop blocks
// again. Idle itself does not coalesce: idleDoneCoalescer gets "at most
// once per pass" behaviour by refusing to queue a second task while its
// first one is still pending.
//
// Waking the blocked loop uses a self-pipe: Idle writes one byte to
// the write end (non-blocking, so a backed-up queue never stalls the
// caller), and Run blocks reading the read end until a byte — or
// end-of-file, on Stop — arrives. This is the same signal-safe wakeup
// idiom compositors and event-driven servers reach for instead of a
// channel when the wakeup source may itself be a signal handler.
type Loop struct {
	mu   sync.Mutex
	idle []func()

	readFD, writeFD int

	ticks func()
}

// NewLoop creates a loop. ticks, if non-nil, is called once per pass
// after idle tasks drain — a hook for a real backend's poll/dispatch
// step, which lives outside this package per spec.md §1.
func NewLoop(ticks func()) *Loop {
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_CLOEXEC); err != nil {
		panic("desktop: creating loop wakeup pipe: " + err.Error())
	}
	if err := unix.SetNonblock(fds[1], true); err != nil {
		panic("desktop: setting loop wakeup pipe nonblocking: " + err.Error())
	}
	return &Loop{readFD: fds[0], writeFD: fds[1], ticks: ticks}
}

// Idle schedules fn to run on the loop goroutine before the loop next
// blocks waiting for backend input.
func (l *Loop) Idle(fn func()) {
	l.mu.Lock()
	l.idle = append(l.idle, fn)
	l.mu.Unlock()

	if _, err := unix.Write(l.writeFD, []byte{0}); err != nil && err != unix.EAGAIN {
		wlog.Errorf("loop: waking up: %v", err)
	}
}

// IdleScheduler adapts Loop to the schedule func idleDoneCoalescer
// wants, so workspace_protocol.go can coalesce "done" broadcasts onto
// this loop without importing it directly.
func (l *Loop) IdleScheduler() func(func()) { return l.Idle }

// Run blocks reading wakeups and draining idle tasks until Stop closes
// the write end of the wakeup pipe.
func (l *Loop) Run() {
	buf := make([]byte, 64)
	for {
		n, err := unix.Read(l.readFD, buf)
		if err == unix.EINTR {
			continue
		}
		if n == 0 || err != nil {
			return
		}
		l.RunOnce()
	}
}

// RunOnce drains whatever idle tasks are currently queued (running
// newly-queued tasks too, until the queue is empty) and then calls
// ticks once, if set.
func (l *Loop) RunOnce() {
	for {
		l.mu.Lock()
		pending := l.idle
		l.idle = nil
		l.mu.Unlock()
		if len(pending) == 0 {
			break
		}
		for _, fn := range pending {
			fn()
		}
	}
	if l.ticks != nil {
		l.ticks()
	}
}

// Stop ends Run by closing the wakeup pipe's write end, which
// unblocks a pending Read with end-of-file.
func (l *Loop) Stop() {
	unix.Close(l.writeFD)
}
