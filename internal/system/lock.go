package system

// MoveLock freezes player movement while any owner holds it. Each owner
// locks under its own reason, so one panel closing does not free the player
// while another is still open. The zero value is unlocked.
type MoveLock struct {
	reasons map[string]bool
}

func (l *MoveLock) Lock(reason string) {
	if l.reasons == nil {
		l.reasons = make(map[string]bool)
	}
	l.reasons[reason] = true
}

func (l *MoveLock) Unlock(reason string) { delete(l.reasons, reason) }

// Locked reports whether any reason is held.
func (l *MoveLock) Locked() bool { return len(l.reasons) > 0 }

// Held reports whether reason is held.
func (l *MoveLock) Held(reason string) bool { return l.reasons[reason] }
