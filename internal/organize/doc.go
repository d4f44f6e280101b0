// Package organize walks a source tree and relocates eligible photo and
// video files into the archive layout.
//
// Each discovered entry is processed to completion before the next one:
// build a target (canonicalize, classify, bucket), resolve the destination,
// ensure the parent directory, then rename. Per-entry failures are logged
// and recorded in the run report; they never abort the walk. Only a source
// root that cannot be opened fails the run itself.
package organize
