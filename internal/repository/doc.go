// Package repository maintains the local mirror of the standards repository
// used by installed binaries that don't run from a checkout.
//
// The mirror is a shallow-sync clone under the user's data directory. Sync
// follows a public-first authentication strategy: operations are attempted
// anonymously and retried with a GitHub Personal Access Token from the OS
// credential store only when the remote rejects anonymous access, so
// private forks work without any credentials ever touching the config file.
//
// A mirror with local modifications is never overwritten; sync reports the
// dirty tree and skips instead.
package repository
