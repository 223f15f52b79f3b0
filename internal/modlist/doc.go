// Package modlist parses extracted Wabbajack manifests and validates their
// archive entries into Nexus download records.
//
// The manifest is handled as a generic JSON tree with typed, fallible
// accessors for the handful of keys wabbex consumes, rather than a schema for
// the whole document.
package modlist
