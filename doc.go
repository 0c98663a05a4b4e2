// Package extstore lets code running inside a mobile app runtime reach the
// app's sandboxed external-storage directory with ordinary path syntax.
//
// Any path that starts with "/external/" is rewritten against the External
// Root, the app-specific directory the platform hands out for external files,
// and served by the external backend. Every other path is passed to the host
// filesystem unchanged.
//
// # Usage
//
//	root, err := extstore.ResolveRoot()
//	if err != nil {
//	    return err
//	}
//	store, err := extstore.New(root, extstore.WithLogger(slog.Default()))
//	if err != nil {
//	    return err
//	}
//
//	err = store.WithFile("/external/notes.txt", extstore.ModeWrite, func(f *extstore.File) error {
//	    _, err := f.WriteString("hello")
//	    return err
//	})
//
//	names, err := store.ListDir("/external/")
//
// # Modes
//
// External paths support exactly two modes, ModeRead ("r" or "read") and
// ModeWrite ("w" or "write"). Host paths accept the fopen-style modes the host
// open primitive understands: r, w, a and x, optionally followed by "+", with
// an optional "b" or "t".
//
// # Errors
//
// Opening an external path with any other mode fails with a *fs.PathError
// wrapping ErrUnsupportedMode before a stream is created. Every other failure
// is the backend's own error, returned without wrapping. Nothing is retried.
//
// # Concurrency
//
// Calls block until the underlying I/O completes. Root and Store are immutable
// after construction and may be shared between goroutines. A *File is owned by
// the caller that opened it and is not safe for concurrent use.
package extstore
