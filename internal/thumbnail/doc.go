// Package thumbnail produces a PNG thumbnail from the first image found in a
// ZIP or RAR archive.
//
// A Generator runs one linear pipeline per call:
//
//	resolve kind -> open archive -> select entry -> decode -> resize -> write
//
// Every step either advances or fails the whole call; there are no retries.
// Failures are reported as *Error values carrying an ErrorKind, and ExitCode
// maps any result to a process exit status.
package thumbnail
