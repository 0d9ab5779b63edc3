// Package version provides version information for the application.
//
// The variables are set at link time with -ldflags "-X". When they are not,
// values are filled from the module's embedded build information.
package version
