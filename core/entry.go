package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Entry represents a log record with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Module  string
	Message string
	Caller  CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Module = ""
	e.Message = ""
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Module = ""
	e.Message = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information. A failed lookup yields the
// zero CallerInfo with Defined false rather than an error; rendering
// degrades to a "?" placeholder in that case.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// CallerFromPC resolves caller information from a program counter, as
// carried by a log/slog record.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}

	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.PC == 0 {
		return CallerInfo{}
	}

	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}

// PackagePath returns the import path of the package that produced the
// entry, derived from the fully qualified function name. It returns
// "?" when the caller is unknown.
func (c CallerInfo) PackagePath() string {
	if !c.Defined || c.Function == "" {
		return "?"
	}

	// "github.com/user/repo/pkg.(*T).Method" -> "github.com/user/repo/pkg"
	fn := c.Function
	slash := strings.LastIndexByte(fn, '/')
	if dot := strings.IndexByte(fn[slash+1:], '.'); dot >= 0 {
		return fn[:slash+1+dot]
	}
	return fn
}
