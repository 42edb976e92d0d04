// Package logger is a process-wide logging facade. Backends implement
// Instance; all configured backends receive every record.
package logger

// Instance is a single logging backend.
type Instance interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

var instances []Instance

// Init installs the logging backends. Call once at process start, before
// anything logs. Logging before Init is a silent no-op.
func Init(backends ...Instance) {
	instances = backends
}

// Debug writes a record at DEBUG level to all backends.
func Debug(message string, keyvals ...any) {
	for _, i := range instances {
		i.Debug(message, keyvals...)
	}
}

// Info writes a record at INFO level to all backends.
func Info(message string, keyvals ...any) {
	for _, i := range instances {
		i.Info(message, keyvals...)
	}
}

// Warn writes a record at WARN level to all backends.
func Warn(message string, keyvals ...any) {
	for _, i := range instances {
		i.Warn(message, keyvals...)
	}
}

// Error writes a record at ERROR level to all backends.
func Error(message string, keyvals ...any) {
	for _, i := range instances {
		i.Error(message, keyvals...)
	}
}

// Fatal writes a record at FATAL level; the backend terminates the process.
func Fatal(message string, keyvals ...any) {
	for _, i := range instances {
		i.Fatal(message, keyvals...)
	}
}
