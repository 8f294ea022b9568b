// Package fileops provides the low-level filesystem primitives the document
// registry and doctor command rely on: read-only access checks, containment
// validation against the docs root, and a secure recursive markdown scan.
//
// All operations are strictly read-only. Scanning is confined to an os.Root
// so neither path traversal in registered paths nor symlinks inside the docs
// tree can reach files outside it.
package fileops
