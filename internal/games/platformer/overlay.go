package platformer

// hideTimer is a cancellable auto-hide deadline measured in ticks.
// Arming replaces any pending deadline, so at most one is ever pending.
type hideTimer struct {
	armed    bool
	deadline uint64
}

func (t *hideTimer) arm(now, after uint64) {
	t.armed = true
	t.deadline = now + after
}

func (t *hideTimer) cancel() {
	t.armed = false
	t.deadline = 0
}

func (t *hideTimer) due(now uint64) bool {
	return t.armed && now >= t.deadline
}

// Overlay holds the message banner and the modal.
// The goal banner reuses the message slot in persistent mode.
type Overlay struct {
	message    string
	visible    bool
	persistent bool
	timer      hideTimer
	hideAfter  uint64

	modal     string
	modalOpen bool
}

// newOverlay creates an overlay whose messages hide after hideAfter ticks.
func newOverlay(hideAfter uint64) Overlay {
	return Overlay{hideAfter: hideAfter}
}

// ShowMessage shows a transient message and reschedules its auto-hide.
// An empty text hides the banner instead. Returns whether the banner is
// visible afterwards.
func (o *Overlay) ShowMessage(text string, now uint64) bool {
	o.persistent = false
	if text == "" {
		o.HideMessage()
		return false
	}

	o.message = text
	o.visible = true
	o.timer.arm(now, o.hideAfter)
	return true
}

// ShowPersistent shows a banner that never auto-hides.
func (o *Overlay) ShowPersistent(text string) {
	o.timer.cancel()
	o.message = text
	o.visible = true
	o.persistent = true
}

// HideMessage hides the banner and cancels its timer.
// Returns whether anything was visible.
func (o *Overlay) HideMessage() bool {
	wasVisible := o.visible
	o.timer.cancel()
	o.message = ""
	o.visible = false
	o.persistent = false
	return wasVisible
}

// OpenModal shows the modal with text.
func (o *Overlay) OpenModal(text string) {
	o.modal = text
	o.modalOpen = true
}

// CloseModal hides the modal. Returns false if it was not open.
func (o *Overlay) CloseModal() bool {
	if !o.modalOpen {
		return false
	}
	o.modal = ""
	o.modalOpen = false
	return true
}

// Advance hides the message once its deadline has passed.
// Returns true if the message was hidden by this call.
func (o *Overlay) Advance(now uint64) bool {
	if !o.timer.due(now) {
		return false
	}
	return o.HideMessage()
}

// Message returns the banner text and whether it is visible and persistent.
func (o *Overlay) Message() (text string, visible, persistent bool) {
	return o.message, o.visible, o.persistent
}

// Modal returns the modal text and whether it is open.
func (o *Overlay) Modal() (string, bool) {
	return o.modal, o.modalOpen
}

// HideDeadline returns the pending auto-hide tick, if any.
func (o *Overlay) HideDeadline() (uint64, bool) {
	return o.timer.deadline, o.timer.armed
}
