// Package archive stores sampled slices in SQLite or PostgreSQL through gorm,
// so earlier slices can be listed and their points fetched again without
// re-reading the source image.
package archive
