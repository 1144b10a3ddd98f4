//go:build civil_debug

package civiltime

import (
	"io"
	"os"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can be
leveraged to invoke or disable use of the [DefaultTracer] [Tracer]
qualifier.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "CIVILTIME_DEBUG"

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]: a timestamp, an [EventType] and the event
arguments.
*/
type TraceRecord struct {
	Time time.Time
	Type EventType
	Func string
	Args []any
}

/*
Tracer implements an interface tracer type, which is implemented by
[DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu   sync.Mutex
	w    io.Writer
	mask EventType
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The input
[io.Writer] value represents the writer interface type to which
debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{w: writer, mask: EventAll}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels to be
used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.mask |= ev }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.mask &^= ev }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end user
directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if r.mask&rec.Type == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	line := rec.Time.Format("15:04:05.000")
	switch rec.Type {
	case EventEnter:
		line += " → " + rec.Func
	case EventExit:
		line += " ← " + rec.Func
	default:
		line += "   • " + rec.Func
	}
	for _, a := range rec.Args {
		line += " " + fmtTraceArg(a)
	}
	r.w.Write([]byte(line + "\n"))
}

func fmtTraceArg(a any) (s string) {
	switch tv := a.(type) {
	case string:
		s = tv
	case int:
		s = itoa(tv)
	case CivilDateTime:
		s = tv.String()
	case Offset:
		s = tv.String()
	case IsoFormat:
		s = tv.String()
	case Delta:
		s = `delta`
	default:
		s = `?`
	}
	return
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (_ *discardTracer) Trace(_ TraceRecord) {}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

func init() {
	if os.Getenv(EnvDebugVar) != "" {
		EnableDebug(NewDefaultTracer(os.Stderr))
	}
}

func emit(ev EventType, fn string, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()
	t.Trace(TraceRecord{Time: time.Now(), Type: ev, Func: fn, Args: args})
}

func debugEnter(args ...any) { emit(EventEnter, `arith`, args...) }
func debugExit(args ...any)  { emit(EventExit, `arith`, args...) }
func debugCodec(args ...any) { emit(EventCodec, `codec`, args...) }
func debugZone(args ...any)  { emit(EventZone, `zone`, args...) }
func debugParse(args ...any) { emit(EventParse, `parse`, args...) }
func debugCarry(args ...any) { emit(EventCarry, `carry`, args...) }
