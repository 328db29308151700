package result

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicReporter_StackAndCause(t *testing.T) {
	r := Err[int]("bad")
	var rec any
	func() {
		defer func() { rec = recover() }()
		r.UnwrapSuccess()
	}()

	err, ok := rec.(error)
	require.True(t, ok, "expected an error panic, got %T", rec)
	var m *MisuseError
	require.True(t, errors.As(err, &m))
	assert.Equal(t, "called UnwrapSuccess on a failed result", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "UnwrapSuccess")
}

func TestSetReporter_CustomReporterSeesMisuse(t *testing.T) {
	var seen []*MisuseError
	prev := SetReporter(ReporterFunc(func(err *MisuseError) {
		seen = append(seen, err)
	}))
	defer SetReporter(prev)

	r := Ok[int, string](1)
	// a reporter that returns still cannot make the misuse survivable
	requireMisuse(t, "UnwrapFailure", func() { r.UnwrapFailure() })
	require.Len(t, seen, 1)
	assert.Equal(t, "UnwrapFailure", seen[0].Op)
	assert.Equal(t, StateSuccess, seen[0].State)
}

func TestSetReporter_NilRestoresDefault(t *testing.T) {
	prev := SetReporter(ReporterFunc(func(*MisuseError) {}))
	SetReporter(nil)
	defer SetReporter(prev)
	assert.IsType(t, DefaultReporter(), currentReporter())
}

func TestAbortReporter_LogsAndExits(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	abort := &AbortReporter{
		Logger: &log.Logger{Handler: cli.New(&buf), Level: log.ErrorLevel},
		Exit:   func(c int) { code = c },
	}
	prev := SetReporter(abort)
	defer SetReporter(prev)

	r := Ok[int, string](1)
	r.UnwrapSuccess()
	requireMisuse(t, "UnwrapSuccess", func() { r.UnwrapSuccess() })

	assert.Equal(t, AbortExitCode, code)
	assert.Contains(t, buf.String(), "called UnwrapSuccess on a consumed result")
	assert.Contains(t, buf.String(), r.Id().String())
}

func TestAbortReporter_ExpectMessageVerbatim(t *testing.T) {
	var buf bytes.Buffer
	abort := &AbortReporter{
		Logger: &log.Logger{Handler: cli.New(&buf), Level: log.ErrorLevel},
		Exit:   func(int) {},
	}
	prev := SetReporter(abort)
	defer SetReporter(prev)

	r := Err[int]("bad")
	requireMisuse(t, "Expect", func() { r.Expect("the answer must be computed") })
	assert.Contains(t, buf.String(), "the answer must be computed")
}

func TestStateString(t *testing.T) {
	t.Parallel()
	cases := map[State]string{
		StateEmpty:           "empty",
		StateSuccess:         "success",
		StateFailure:         "failure",
		StateConsumedSuccess: "consumed success",
		StateConsumedFailure: "consumed failure",
	}
	for s, want := range cases {
		assert.Equal(t, want, s.String())
	}
}
