// Package log is the logging seam of the Wazap client.
//
// The client never requires a logger: by default it uses [NoopLogger] and
// stays silent. Callers who want to see request/response traces pass a
// [Logger] through wazap.WithLogger. A zerolog-backed implementation is
// provided:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.DebugLevel)
//	client, err := wazap.New(cfg, wazap.WithLogger(logger))
//
// The client only logs at debug level and never logs credentials.
//
// Any other logging library can be plugged in by implementing [Logger].
package log
