// Package store provides concrete byte stores for the editor: an in-memory
// seekable buffer, temp-file spooling for copy-then-edit-then-save flows,
// and a memory-mapped file store. All of them implement io.ReadWriteSeeker;
// *os.File works as a store directly.
//
// Stores that can change their reported length additionally implement
// Truncator. The editing core itself never resizes a store; the capability
// exists for embedding applications that want length-changing operations of
// their own.
package store
