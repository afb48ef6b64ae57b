// Package darwin provides macOS platform support using the CoreGraphics
// window server and Quartz event APIs. All functionality requires CGo.
// On other platforms (or with CGo disabled) the package compiles as a
// no-op stub and registers nothing.
package darwin
