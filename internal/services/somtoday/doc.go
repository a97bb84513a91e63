// Package somtoday talks to the Somtoday REST API on behalf of a single
// student.
//
// The Client issues authenticated GET requests and returns responses as
// order-preserving jsonvalue documents; it never retries and treats every
// non-2xx status as fatal. Records in this package decode the few fields the
// exporter needs (placement naming, subject and cohort identifiers) and
// validate that they are present before anything is derived from them.
package somtoday
