package result

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MisuseError describes a violated Result invariant: extracting the wrong
// side, consuming twice, viewing a consumed result or an invalid conversion.
// It is a programming error, never a domain failure.
type MisuseError struct {
	Op       string
	State    State
	ResultID uuid.UUID
	Message  string
}

func (e *MisuseError) Error() string {
	return e.Message
}

// Reporter handles a misuse. Report is expected not to return; if it does
// the misuse still panics.
type Reporter interface {
	Report(err *MisuseError)
}

type ReporterFunc func(err *MisuseError)

func (f ReporterFunc) Report(err *MisuseError) {
	f(err)
}

// PanicReporter panics with the misuse wrapped in a stack trace, so a
// recover further up can observe it with errors.As.
type PanicReporter struct{}

func (PanicReporter) Report(err *MisuseError) {
	panic(errors.WithStack(err))
}

// AbortReporter writes the diagnostic to its logger and exits the process.
type AbortReporter struct {
	Logger log.Interface
	Exit   func(code int)
}

// AbortExitCode is the status AbortReporter exits with.
const AbortExitCode = 2

func NewAbortReporter() *AbortReporter {
	return &AbortReporter{
		Logger: &log.Logger{Handler: cli.New(os.Stderr), Level: log.ErrorLevel},
		Exit:   os.Exit,
	}
}

func (a *AbortReporter) Report(err *MisuseError) {
	fields := log.Fields{"op": err.Op, "state": err.State.String()}
	if err.ResultID != uuid.Nil {
		fields["result"] = err.ResultID.String()
	}
	a.Logger.WithFields(fields).Error(err.Message)
	a.Exit(AbortExitCode)
}

var current atomic.Pointer[Reporter]

// SetReporter replaces the reporter used for every misuse and returns the
// previous one. A nil reporter restores DefaultReporter.
func SetReporter(r Reporter) Reporter {
	if r == nil {
		r = DefaultReporter()
	}
	prev := current.Swap(&r)
	if prev == nil {
		return DefaultReporter()
	}
	return *prev
}

// DefaultReporter is the reporter selected at build time: PanicReporter,
// or AbortReporter with the result_abort build tag.
func DefaultReporter() Reporter {
	return buildReporter()
}

func currentReporter() Reporter {
	if r := current.Load(); r != nil {
		return *r
	}
	return DefaultReporter()
}

// ReportMisuse reports a misuse detected outside this package, such as a
// helper built on Result, through the active Reporter. It does not return.
func ReportMisuse(op, message string) {
	fail(op, StateEmpty, uuid.Nil, message)
}

func fail(op string, state State, id uuid.UUID, message string) {
	err := &MisuseError{Op: op, State: state, ResultID: id, Message: message}
	currentReporter().Report(err)
	panic(errors.WithStack(err))
}

func (r Result[T, E]) misuse(op string) {
	fail(op, r.state, r.id, fmt.Sprintf("called %s on %s result", op, r.state.article()))
}
