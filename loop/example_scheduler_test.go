package loop_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// ExampleScheduler wires the tick driver and the input adapter to one
// session. Input is applied before gravity in every frame, and a final
// system observes what happened.
func ExampleScheduler() {
	e := engine.New(engine.DefaultRows, engine.DefaultCols,
		engine.WithSource(engine.NewSequenceSource(engine.KindI)))

	commands := loop.NewCommands()
	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Commands: commands})
	scheduler.Register(&loop.GravitySystem{Period: 500 * time.Millisecond})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		for _, ev := range frame.Events {
			fmt.Println(ev.Kind)
		}
	}))

	commands.Push(loop.ActionMoveRight)
	scheduler.Once(0.25)
	scheduler.Once(0.25)

	p, _ := e.Active()
	fmt.Println(p.X, p.Y)

	// Output:
	// shifted
	// fell
	// 4 1
}
