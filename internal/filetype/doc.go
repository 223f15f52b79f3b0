// Package filetype shells out to the file(1) utility to classify content
// before the pipeline trusts it.
package filetype
