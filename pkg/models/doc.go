// Package models holds the Notion object shapes this service reads: databases (schemas),
// pages (records) and their typed property values.
//
// Property values form a closed sum type discriminated by the "type" tag. Decoding goes through
// a table keyed by that tag, so a decoded Property always carries the variant that matches its
// Type. The raw JSON of each decoded property is retained and written back verbatim, which lets
// proxied responses keep Notion's exact shape.
package models
