package loop

// System is one step of a frame. Systems run in registration order and keep
// whatever state they need between frames in their own fields.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
