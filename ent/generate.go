// Package ent holds the generated client for the persistence layer.
// Run `go generate ./ent` after editing any schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock,sql/upsert ./schema
