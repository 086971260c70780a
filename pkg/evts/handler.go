package evts

// Func is the callback signature for event handlers. It receives the firing
// record and the event whose dispatch loop is invoking it. For a compound
// relay the two differ: f.Evt() reports the originating source while evt is
// the event actually dispatching.
type Func func(f *Firing, evt *Event)

// Handler is a registered callback handle. Handles are compared by pointer
// identity: the same *Handler added twice to a list is stored once, and
// removal matches exactly the handle that was added. Wrap a closure with
// NewHandler and keep the handle if you intend to remove it later.
type Handler struct {
	fn Func
}

// NewHandler wraps fn in a Handler handle.
func NewHandler(fn Func) *Handler {
	return &Handler{fn: fn}
}

func (h *Handler) call(f *Firing, evt *Event) {
	if h.fn != nil {
		h.fn(f, evt)
	}
}

// appendHandler appends h unless it is nil or already present.
func appendHandler(list []*Handler, h *Handler) []*Handler {
	if h == nil {
		return list
	}
	for _, existing := range list {
		if existing == h {
			return list
		}
	}
	return append(list, h)
}

// removeHandler removes h if present, preserving order.
func removeHandler(list []*Handler, h *Handler) []*Handler {
	for i, existing := range list {
		if existing == h {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
