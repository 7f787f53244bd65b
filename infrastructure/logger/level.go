package logger

import "strings"

// Level is the level at which a logger or a writer is configured. Entries
// below it are dropped.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

type levelNames struct {
	tag  string
	long string
}

var levelNamesTable = [...]levelNames{
	LevelTrace:    {"TRC", "trace"},
	LevelDebug:    {"DBG", "debug"},
	LevelInfo:     {"INF", "info"},
	LevelWarn:     {"WRN", "warn"},
	LevelError:    {"ERR", "error"},
	LevelCritical: {"CRT", "critical"},
	LevelOff:      {"OFF", "off"},
}

// LevelFromString parses either the long name of a level or its tag, case
// insensitively. If s names no level, LevelInfo and false are returned.
func LevelFromString(s string) (l Level, ok bool) {
	lower := strings.ToLower(s)
	for level, names := range levelNamesTable {
		if lower == names.long || lower == strings.ToLower(names.tag) {
			return Level(level), true
		}
	}
	return LevelInfo, false
}

// String returns the tag of the level as printed in log entries
func (l Level) String() string {
	if l >= LevelOff {
		return levelNamesTable[LevelOff].tag
	}
	return levelNamesTable[l].tag
}
