// Package feed reads and writes the line-delimited tweet file.
//
// loader.go decodes tweets.json into a domain.Dataset, flattening the
// nested user object and coercing unparseable timestamps to the
// unknown-time sentinel. generator.go synthesizes the sample file the
// loader reads back (round-trip property: line count in equals record
// count out).
package feed
