// Package database owns the shared SQLite connection: it opens the database,
// runs schema migration for all entities and seeds the default categories.
// Domain operations live in the per-entity repository subpackages
// (users, categories, recipes, favorites), each constructed with the gorm
// handle so tests can swap in their own database.
package database
