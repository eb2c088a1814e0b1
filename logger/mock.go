package logger

import (
	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock implementation of the Logger interface,
// used by tests that assert on encoding diagnostics.
type MockLogger struct {
	mock.Mock
}

var _ Logger = (*MockLogger)(nil)

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Debug(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Info(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Warn(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Error(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Fatal(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) SetLevel(level Level) {
	m.Called(level)
}

func (m *MockLogger) Level() Level {
	args := m.Called()
	return args.Get(0).(Level)
}

func (m *MockLogger) With(keyValues ...any) Logger {
	args := m.Called(keyValues...)
	return args.Get(0).(Logger)
}
