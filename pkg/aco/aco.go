// Package aco reads and writes Adobe Color Table (.aco) swatch files.
//
// A table is a version word, a count word and one record per color. Version 1 records
// are unnamed; version 2 records carry a UTF-16 name. Only RGB records are decoded.
// Encode always writes version 2. Decoder accepts the stream in arbitrary chunks, which
// makes it usable on network bodies and compressed readers as well as files.
package aco
