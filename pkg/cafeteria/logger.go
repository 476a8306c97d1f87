package cafeteria

import (
	"fmt"
	"log"
)

type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stdLogger struct{}

func (stdLogger) Debug(msg string, args ...interface{}) {
	log.Printf("[CAFE DEBUG] "+msg, args...)
}

func (stdLogger) Info(msg string, args ...interface{}) {
	log.Printf("[CAFE INFO] "+msg, args...)
}

func (stdLogger) Error(msg string, args ...interface{}) {
	log.Printf("[CAFE ERROR] "+msg, args...)
}

func NewStdLogger() Logger {
	return stdLogger{}
}

type fmtLogger struct{}

func (fmtLogger) Debug(msg string, args ...interface{}) {
	fmt.Printf(msg+"\n", args...)
}

func (fmtLogger) Info(msg string, args ...interface{}) {
	fmt.Printf(msg+"\n", args...)
}

func (fmtLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("ERROR: "+msg+"\n", args...)
}

func NewFmtLogger() Logger {
	return fmtLogger{}
}
