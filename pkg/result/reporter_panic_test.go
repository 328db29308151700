//go:build !result_abort

package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultReporter_Panics(t *testing.T) {
	t.Parallel()
	assert.IsType(t, PanicReporter{}, DefaultReporter())
}
