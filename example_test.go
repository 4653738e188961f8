package mowl_test

import (
	"github.com/mowl-logging/mowl"
)

func Example() {
	if err := mowl.Init(); err != nil {
		// a logger was already installed
		return
	}

	mowl.Warn("Warning")
}

func ExampleInitWithLevel() {
	if err := mowl.InitWithLevel(mowl.WarnLevel); err != nil {
		return
	}

	mowl.Warn("A warning")       // emitted
	mowl.Info("An info message") // suppressed
}
