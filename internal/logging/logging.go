// Package logging configures the global zerolog logger for the netcomp CLI.
//
// Library packages only emit debug/trace events through log.Logger; whether
// and how they are shown is decided here.
package logging

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35

	colorBold     = 1
	colorDarkGray = 90
)

// Console routes the global logger to a human-readable writer on out with
// time-only timestamps and short caller locations.
func Console(out io.Writer, noColour bool) {
	zerolog.CallerMarshalFunc = callerMarshal(noColour)

	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: noColour}
	cw.FormatLevel = formatLevel(noColour)
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.CallerFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}
	log.Logger = log.With().Caller().Logger().Output(cw)
}

// SetLevel maps a -v count to a level: 0 info, 1 debug, more trace.
func SetLevel(verbosity int) {
	log.Logger = log.Logger.Level(Level(verbosity))
}

// Level returns the zerolog level for a -v count.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func colorize(s any, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// callerMarshal keeps only "file.go.line", padded to a fixed width.
func callerMarshal(noColour bool) func(pc uintptr, file string, line int) string {
	return func(_ uintptr, file string, line int) string {
		short := file
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			short = file[i+1:]
		}
		loc := fmt.Sprintf("%15s.%-4s", short, strconv.Itoa(line))
		if len(loc) > 20 {
			loc = ".." + loc[len(loc)-18:]
		}
		return colorize(loc, colorDarkGray, noColour)
	}
}

func formatLevel(noColour bool) zerolog.Formatter {
	return func(i any) string {
		ll, ok := i.(string)
		if !ok {
			if i == nil {
				return colorize("| ???   |", colorBold, noColour)
			}
			return strings.ToUpper(fmt.Sprintf("| %-5s |", i))
		}
		switch ll {
		case zerolog.LevelTraceValue:
			return colorize("| TRACE |", colorMagenta, noColour)
		case zerolog.LevelDebugValue:
			return colorize("| DEBUG |", colorYellow, noColour)
		case zerolog.LevelInfoValue:
			return colorize("| INFO  |", colorGreen, noColour)
		case zerolog.LevelWarnValue:
			return colorize("| WARN  |", colorRed, noColour)
		case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
			return colorize(colorize(fmt.Sprintf("| %-5s |", strings.ToUpper(ll)), colorRed, noColour), colorBold, noColour)
		default:
			return colorize(ll, colorBold, noColour)
		}
	}
}
