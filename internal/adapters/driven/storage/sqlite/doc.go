// Package sqlite provides the durable DocumentStore implementation.
//
// The database is opened in WAL mode so concurrent question handlers can
// read the corpus while an upload writes. Schema changes are applied
// through embedded, numbered .up.sql migrations at startup.
package sqlite
