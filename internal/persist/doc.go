// Package persist reads and writes the tracker's backing document.
//
// The whole document is one JSON object with a sessions array; it is read
// fully into memory, turned into a track.Store, and rewritten in full after
// a successful mutation. Writes go to a temp file in the same directory
// followed by a rename, so a reader never observes a partial document.
//
// Before decoding, the raw bytes are vetted against an embedded CUE schema;
// a document that does not match the expected shape is rejected with a
// parse error naming the offending field.
package persist
