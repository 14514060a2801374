package sl

import "log/slog"

// Err passes an error into slog attributes as it is.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
