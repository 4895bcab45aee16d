// Package testing records drawing into comparable operation lists.
//
// Capture runs a drawing function against a recording canvas and returns a
// Snapshot whose DisplayOps can be asserted on directly or compared against
// a golden file:
//
//	snap := shapetest.Capture(size, func(c graphics.Canvas) {
//	    painter.RenderFrame(c, bounds, drawImage)
//	})
//	if got := snap.Ops(); ... { }
//	snap.MatchesFile(t, "testdata/round.snapshot.json")
//
// Update golden files with:
//
//	SHAPEVIEW_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import shapetest "github.com/go-drift/shapeview/pkg/testing"
package testing
