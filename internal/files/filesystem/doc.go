// Package filesystem provides the filesystem abstraction the sync runs on.
//
// The Provider interface covers exactly what synchronization needs: reading
// documents, listing addon directories, walking for catalogs, and writing
// changed files back. Both implementations wrap go-billy filesystems:
//   - NewOS: the real filesystem (paths must be absolute)
//   - NewMemory: an in-memory filesystem for tests
package filesystem
