// Package queries contains the read side of the sepulka service. Handlers
// build SQL with squirrel and run it through gorm, returning flat read
// models rather than aggregates.
//
// Every query carries the calling policy.Actor and is authorized before
// the database is touched.
package queries
