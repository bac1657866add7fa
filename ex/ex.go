package ex

import "fmt"

// Ex is an error with a code, possibly an error, and a context map
type Ex struct {
	Code    string
	Err     error
	Context map[string]interface{}
}

func (ex Ex) Unwrap() error { return ex.Err }

// Is matches any Ex with the same code, so sentinels survive With and Wrap
func (ex Ex) Is(target error) bool {
	that, valid := target.(Ex)
	if !valid {
		return false
	}
	return ex.Code == that.Code
}

// With returns a copy carrying one more context entry
func (ex Ex) With(key string, value interface{}) Ex {
	context := make(map[string]interface{}, len(ex.Context)+1)
	for k, v := range ex.Context {
		context[k] = v
	}
	context[key] = value
	return Ex{Code: ex.Code, Err: ex.Err, Context: context}
}

// Wrap returns a copy caused by err
func (ex Ex) Wrap(err error) Ex {
	return Ex{Code: ex.Code, Err: err, Context: ex.Context}
}

func (ex Ex) String() string {
	return fmt.Sprintf("error: %v: %v: %v", ex.Code, ex.Err, ex.Context)
}

func (ex Ex) Error() string {
	return ex.String()
}
