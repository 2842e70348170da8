package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for per-frame details from the stages.
	LevelDebug LogLevel = iota
	// LevelInfo is for run-level progress from the orchestrator and CLI.
	LevelInfo
	// LevelWarn is for problems that don't stop the encode, such as a failed
	// debug write or an interrupt.
	LevelWarn
	// LevelError is for problems that abort the run.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// LookupLogLevel returns the level named s and whether the name is known.
func LookupLogLevel(s string) (LogLevel, bool) {
	for l, name := range levelNames {
		if name == s {
			return LogLevel(l), true
		}
	}
	return LevelInfo, false
}

// ParseLogLevel parses a string into a LogLevel, falling back to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	l, _ := LookupLogLevel(s)
	return l
}

// Logger abstracts logging operations with multi-language support.
// The msg parameter is a message key that can be translated; args are
// applied after translation.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a new Logger that prefixes messages with the
	// component name.
	WithComponent(component string) Logger
}
