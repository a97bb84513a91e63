// Package services defines shared utilities consumed by the export pipeline
// and its Somtoday integration.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, placement labels, and subject slugs
//     for logging.
//   - Structured error markers plus the Wrap helper that classify failures as
//     transport, shape, filesystem, or configuration problems.
//
// Every marker is fatal to an export; the classification only shapes the
// message and log fields, never control flow.
package services
