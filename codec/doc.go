// Package codec holds the wire conventions of the speech API: datetimes as
// epoch seconds, durations as ISO-8601 text, and the default encoder that
// applies them during JSON serialization.
package codec
