package index

import "strings"

// Frame identifies a card frame era/style.
type Frame uint8

const (
	Frame1993 Frame = iota
	Frame1997
	Frame2003
	Frame2015
	FrameFuture
)

var frameNames = map[string]Frame{
	"1993": Frame1993,
	"1997": Frame1997,
	"2003": Frame2003,
	"2015": Frame2015,
	"future": FrameFuture,
}

// ParseFrame resolves a frame name. ok is false for unrecognized names.
func ParseFrame(name string) (f Frame, ok bool) {
	f, ok = frameNames[strings.ToLower(name)]
	return f, ok
}
