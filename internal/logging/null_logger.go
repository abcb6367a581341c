package logging

import "github.com/vvka-141/bytecrawl/pkg/bytecrawl"

var _ bytecrawl.Logger = (*NullLogger)(nil)

// NullLogger drops everything. The full-screen shell uses it when no
// --log-file is given, and worlds default to it.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}

func (*NullLogger) Info(string, ...interface{}) {}

func (*NullLogger) Error(string, ...interface{}) {}
