// Package takeout drives a full export of one student's academic records.
//
// An Exporter walks the graph student → placements → subject averages →
// grades and exam grades strictly in sequence. Every response is stripped of
// API metadata before it is written below the output root; grade listings
// are unwrapped from their items envelope. The first failure ends the run and
// leaves files written so far in place.
package takeout
