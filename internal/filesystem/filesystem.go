// Package filesystem exposes the afero filesystem shared by every component
// that touches disk, so tests can swap in an in-memory implementation.
package filesystem

import "github.com/spf13/afero"

var api = &afero.Afero{Fs: afero.NewOsFs()}

// API returns the active filesystem.
func API() *afero.Afero {
	return api
}

// SetMemMapFs replaces the active filesystem with an in-memory one.
func SetMemMapFs() {
	api = &afero.Afero{Fs: afero.NewMemMapFs()}
}
