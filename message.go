package protocell

// Message is implemented by every message type.
//
// Messages own their nested messages: CloneMessage returns a deep copy that
// shares no mutable storage with the receiver.
type Message interface {
	// Reset clears every field back to its zero state.
	Reset()
	// CloneMessage returns a deep copy of the message.
	CloneMessage() Message
	// EqualMessage reports whether other has the same type, field values
	// and presence as the receiver.
	EqualMessage(other Message) bool
}

// Clone returns a deep copy of m with its concrete type preserved.
// A nil m yields nil.
func Clone[M Message](m M) M {
	var zero M
	if any(m) == any(zero) {
		return zero
	}
	return m.CloneMessage().(M)
}

// Equal reports whether a and b hold the same fields with the same presence.
// Two nil messages are equal; a nil and a non-nil message are not.
func Equal(a, b Message) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.EqualMessage(b)
}
