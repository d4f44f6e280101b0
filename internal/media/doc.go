// Package media decides whether a filesystem entry is an archivable photo or
// video and which calendar bucket it belongs to.
//
// Classification is a pure lookup on the lowercased file extension: a couple
// of raw camera formats map straight to the image category, everything else
// goes through the extension-to-media-type table. Entries that cannot be
// classified carry a closed set of ineligibility reasons so callers can
// distinguish "skip quietly" from real failures.
//
// Bucketing reads the entry's last-modification time and interprets it in
// UTC, keeping year/month buckets deterministic across machines.
package media
