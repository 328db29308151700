//go:build result_abort

package result

func buildReporter() Reporter {
	return NewAbortReporter()
}
