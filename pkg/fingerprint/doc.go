// Package fingerprint computes comparable fingerprints of file content.
//
// A Strategy is selected once per run from the closed set of methods in
// types.Methods:
//
//   - SIZE uses the size recorded by the scanner and performs no I/O.
//   - CONTENT reads the whole file into memory.
//   - SHA1, MD5 and SHA256 stream the file through the hash in ChunkSize
//     pieces and never hold more than one chunk.
//
// Every strategy reads a file at most once.
package fingerprint
