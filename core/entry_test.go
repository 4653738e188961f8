package core

import (
	"strings"
	"testing"
	"time"
)

func TestEntryPool(t *testing.T) {
	e := GetEntry()
	e.Level = ErrorLevel
	e.Module = "example/pkg"
	e.Message = "something broke"
	e.Caller = CallerInfo{File: "x.go", Line: 12, Defined: true}
	PutEntry(e)

	e2 := GetEntry()
	if e2.Message != "" {
		t.Errorf("recycled entry kept message %q", e2.Message)
	}
	if e2.Module != "" {
		t.Errorf("recycled entry kept module %q", e2.Module)
	}
	if e2.Caller.Defined {
		t.Error("recycled entry kept caller info")
	}
	if e2.Time.IsZero() {
		t.Error("GetEntry did not stamp the time")
	}
	if time.Since(e2.Time) > time.Minute {
		t.Errorf("GetEntry stamped a stale time: %v", e2.Time)
	}
	PutEntry(e2)
}

func TestPutEntry_Nil(t *testing.T) {
	// Must not panic.
	PutEntry(nil)
}

func TestGetCaller(t *testing.T) {
	c := GetCaller(1)
	if !c.Defined {
		t.Fatal("expected caller to be resolved")
	}
	if c.ShortFile != "entry_test.go" {
		t.Errorf("ShortFile = %q, want entry_test.go", c.ShortFile)
	}
	if c.Line <= 0 {
		t.Errorf("Line = %d, want > 0", c.Line)
	}
	if !strings.HasSuffix(c.Function, "TestGetCaller") {
		t.Errorf("Function = %q, want suffix TestGetCaller", c.Function)
	}
}

func TestGetCaller_BadSkip(t *testing.T) {
	c := GetCaller(1000)
	if c.Defined {
		t.Error("expected undefined caller for absurd skip")
	}
	if got := c.PackagePath(); got != "?" {
		t.Errorf("PackagePath() = %q, want ?", got)
	}
}

func TestCallerInfo_PackagePath(t *testing.T) {
	tests := []struct {
		function string
		want     string
	}{
		{"github.com/user/repo/pkg.Func", "github.com/user/repo/pkg"},
		{"github.com/user/repo/pkg.(*Type).Method", "github.com/user/repo/pkg"},
		{"main.main", "main"},
		{"github.com/user/repo/pkg.Func.func1", "github.com/user/repo/pkg"},
		{"", "?"},
	}

	for _, tt := range tests {
		c := CallerInfo{Function: tt.function, Defined: tt.function != ""}
		if got := c.PackagePath(); got != tt.want {
			t.Errorf("PackagePath(%q) = %q, want %q", tt.function, got, tt.want)
		}
	}
}

func TestCallerFromPC_Zero(t *testing.T) {
	c := CallerFromPC(0)
	if c.Defined {
		t.Error("expected undefined caller for zero pc")
	}
}
