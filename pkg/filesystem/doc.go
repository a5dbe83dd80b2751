// Package filesystem provides the filesystem helpers the hooks need on top
// of afero.
//
// Production code runs against the OS filesystem (NewOS); tests run the
// same code against an in-memory filesystem (NewMemory). All helpers take
// the afero.Fs explicitly.
package filesystem
