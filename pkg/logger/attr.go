package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Source records the display form of a validated value under "source".
func Source(display string) slog.Attr {
	return slog.String("source", display)
}

// FailureCount records the number of top-level failure reasons.
func FailureCount(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Collection records the name of a validated collection.
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// Indexes records the positions of failed collection members.
func Indexes(idx ...int) slog.Attr {
	return slog.Any("indexes", idx)
}

// Requirements groups failed requirement texts under "requirements", keyed
// by position. Returns an empty Attr when there are none.
func Requirements(texts ...string) slog.Attr {
	if len(texts) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, len(texts))
	for i, t := range texts {
		as[i] = slog.String(strconv.Itoa(i), t)
	}
	return slog.Attr{Key: "requirements", Value: slog.GroupValue(as...)}
}
