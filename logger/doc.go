// Package logger provides structured logging for the arrkit toolkit,
// built on zerolog.
//
// The toolkit degrades gracefully on combinator and pipeline failures
// rather than aborting; those recoveries are reported here as warnings.
// By default output goes to stderr at warn level so a library consumer
// sees nothing unless something actually degrades.
package logger
