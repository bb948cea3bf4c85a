package form3

import (
	"fmt"
	"runtime"
)

// ErrMsg returns an error with a message function name and line number.
func ErrMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}

// shapeErr is returned when a must3 shape panics.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the error the shape panicked with, if any.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Stack returns the goroutine stack captured when the shape panicked.
func (s *shapeErr) Stack() string { return s.stack }
