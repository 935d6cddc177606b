package ui

// DefaultExitMessages are asked in turn before the player may leave.
var DefaultExitMessages = []string{
	"Really leave?",
	"Sure you want to leave?",
	"Must you leave?",
}

const exitLock = "exit"

// ExitConfirm steps through a fixed list of confirmations. Confirming the last
// one closes the dialog and reports completion; cancelling closes it at any
// step.
type ExitConfirm struct {
	Messages []string

	lock Locker
	open bool
	step int
	cg   bool
}

func NewExitConfirm(msgs []string, lock Locker) *ExitConfirm {
	if len(msgs) == 0 {
		msgs = DefaultExitMessages
	}
	return &ExitConfirm{Messages: msgs, lock: lock}
}

// Open shows the first confirmation.
func (e *ExitConfirm) Open() {
	if !e.open && e.lock != nil {
		e.lock.Lock(exitLock)
	}
	e.open = true
	e.step = 0
}

func (e *ExitConfirm) Visible() bool { return e.open }

// Step returns the index of the confirmation on screen.
func (e *ExitConfirm) Step() int { return e.step }

// Message returns the question on screen.
func (e *ExitConfirm) Message() string {
	if !e.open {
		return ""
	}
	return e.Messages[e.step]
}

// Confirm advances to the next question. It returns true once the last one
// has been confirmed.
func (e *ExitConfirm) Confirm() bool {
	if !e.open {
		return false
	}
	if e.step+1 < len(e.Messages) {
		e.step++
		return false
	}
	e.Cancel()
	return true
}

// Cancel hides the dialog.
func (e *ExitConfirm) Cancel() {
	if e.open && e.lock != nil {
		e.lock.Unlock(exitLock)
	}
	e.open = false
	e.step = 0
}

// ShowCG shows the closing illustration; HideCG dismisses it.
func (e *ExitConfirm) ShowCG()         { e.cg = true }
func (e *ExitConfirm) HideCG()         { e.cg = false }
func (e *ExitConfirm) CGVisible() bool { return e.cg }
