// Package archive opens ZIP-packaged modlist archives and extracts the single
// manifest entry into a scratch directory that is removed when the caller's
// scope ends.
package archive
