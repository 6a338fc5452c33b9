package keyline

// killRingSize bounds the kill ring; older kills fall off the end.
const killRingSize = 16

// KillRing holds killed text, newest first. Yanking reads the current
// slot; rotating after a yank walks toward older kills and wraps.
type KillRing struct {
	entries []string
	rotate  int
}

// NewKillRing creates an empty kill ring.
func NewKillRing() *KillRing {
	return &KillRing{}
}

// Len returns the number of held kills.
func (k *KillRing) Len() int {
	return len(k.entries)
}

// Push adds killed text as the newest entry and resets the rotation.
// Empty text is ignored.
func (k *KillRing) Push(text string) {
	if text == "" {
		return
	}
	k.entries = append([]string{text}, k.entries...)
	if len(k.entries) > killRingSize {
		k.entries = k.entries[:killRingSize]
	}
	k.rotate = 0
}

// Current returns the entry a yank would insert.
func (k *KillRing) Current() (string, bool) {
	if len(k.entries) == 0 {
		return "", false
	}
	return k.entries[k.rotate], true
}

// Rotate steps to the next older entry, wrapping, and returns it.
func (k *KillRing) Rotate() (string, bool) {
	if len(k.entries) == 0 {
		return "", false
	}
	k.rotate = (k.rotate + 1) % len(k.entries)
	return k.entries[k.rotate], true
}
