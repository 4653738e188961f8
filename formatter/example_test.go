package formatter_test

import (
	"fmt"
	"time"

	"github.com/mowl-logging/mowl/core"
	"github.com/mowl-logging/mowl/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{DisableColors: true})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Module:  "github.com/user/app",
		Message: "disk almost full",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// [2026-01-15T12:00:00Z] [github.com/user/app] [WARN] disk almost full
}
