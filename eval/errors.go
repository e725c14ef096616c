/*
File    : gomixlite/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/gomixlite/environment"
	"github.com/akashmaji946/gomixlite/errs"
	"github.com/akashmaji946/gomixlite/token"
)

// raise builds a Runtime error at [posStart, posEnd] with a full traceback
// walked from ctx outward, one errs.Frame per enclosing call. Frames are
// collected innermost-first; errs.Error.AsString renders them in reverse
// (outermost first) under the "Traceback (most recent call last):" header.
func raise(ctx *environment.Context, posStart, posEnd token.Position, details string) *errs.Error {
	return errs.NewRuntime(posStart, posEnd, details, buildFrames(ctx, posStart))
}

func buildFrames(ctx *environment.Context, pos token.Position) []errs.Frame {
	var frames []errs.Frame
	for ctx != nil {
		frames = append(frames, errs.Frame{DisplayName: ctx.DisplayName, Pos: pos})
		if ctx.ParentEntryPos == nil {
			break
		}
		pos = *ctx.ParentEntryPos
		ctx = ctx.Parent
	}
	return frames
}
