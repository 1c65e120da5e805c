package shared

import "fmt"

// Envelope statuses. Every tool returns exactly one envelope per invocation;
// failures never escape a handler as a Go error.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the uniform envelope returned by every tool.
type Result = map[string]interface{}

// Success tags fields as a success envelope
func Success(fields Result) Result {
	if fields == nil {
		fields = Result{}
	}
	fields["status"] = StatusSuccess
	return fields
}

// Error builds an error envelope with the given message
func Error(message string) Result {
	return Result{
		"error":  message,
		"status": StatusError,
	}
}

// Errorf builds an error envelope with a formatted message
func Errorf(format string, args ...interface{}) Result {
	return Error(fmt.Sprintf(format, args...))
}

// IsError reports whether the envelope carries an error status
func IsError(r Result) bool {
	return r["status"] == StatusError
}
