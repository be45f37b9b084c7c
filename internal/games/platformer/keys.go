package platformer

// heldKeys emulates key-up events for terminals, which only report presses.
// Each flag stays held until its expiry tick; auto-repeat keeps extending it.
type heldKeys struct {
	left, right, up uint64 // Tick at which the key releases; 0 = released
	hold            uint64
}

func newHeldKeys(hold uint64) heldKeys {
	if hold == 0 {
		hold = 1
	}
	return heldKeys{hold: hold}
}

func (k *heldKeys) pressLeft(now uint64) {
	k.left = now + k.hold
	k.right = 0
}

func (k *heldKeys) pressRight(now uint64) {
	k.right = now + k.hold
	k.left = 0
}

func (k *heldKeys) pressUp(now uint64) {
	k.up = now + k.hold
}

// input returns the flags held at tick now.
func (k *heldKeys) input(now uint64) Input {
	return Input{
		Left:  now < k.left,
		Right: now < k.right,
		Up:    now < k.up,
	}
}

func (k *heldKeys) clear() {
	k.left, k.right, k.up = 0, 0, 0
}
