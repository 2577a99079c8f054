package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

type debug struct {
	Parse  bool
	Decode bool
	Encode bool
	Patch  bool
	Eval   bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PLIST_DEBUG_PARSE")
	d.Decode = boolEnv("PLIST_DEBUG_DECODE")
	d.Encode = boolEnv("PLIST_DEBUG_ENCODE")
	d.Patch = boolEnv("PLIST_DEBUG_PATCH")
	d.Eval = boolEnv("PLIST_DEBUG_EVAL")
	d.Match = boolEnv("PLIST_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Match() bool {
	return d.Match
}

func Logf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f, args...)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a readable rendering of vs to stderr.
func Dump(vs ...any) {
	dumper.Fdump(os.Stderr, vs...)
}

// Sdump is Dump to a string.
func Sdump(vs ...any) string {
	return dumper.Sdump(vs...)
}
