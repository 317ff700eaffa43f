// Package fstools provides extension-guarded text file helpers and a project
// walker that skips service names such as node_modules and .git.
//
// Every helper comes in two families. The blocking family (WriteFile,
// ReadFile, ...) runs on the calling goroutine. The asynchronous family
// (WriteFileAsync, ReadFileAsync, ...) starts the work on its own goroutine
// and returns a *Task that settles with the same result and error the
// blocking call would produce.
//
// Guarded operations validate the extension of every path they touch before
// any I/O happens; see sandbox.ValidateExtension. File-system errors are
// returned unchanged from the os package, so errors.Is(err, fs.ErrNotExist)
// works on a missing file.
//
// Text is always read and written as UTF-8.
package fstools
