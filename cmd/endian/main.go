// main.go -- endian: generate byte order conversions and swap record files
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/opencoff/endian"
	flag "github.com/opencoff/pflag"
)

// This will be filled in by "build"
var Version string = "1.0"

var Z string = path.Base(os.Args[0])

// canonical names of commands and their aliases
var cmds = map[string]func(args []string){
	"generate": generate,
	"gen":      generate,
	"g":        generate,
	"swap":     swap,
	"s":        swap,
	"order":    order,
	"version":  version,
}

func main() {
	var ver, help bool

	mf := flag.NewFlagSet(Z, flag.ExitOnError)
	mf.SetInterspersed(false)
	mf.BoolVarP(&ver, "version", "v", false, "Show version info and exit")
	mf.BoolVarP(&help, "help", "h", false, "Show help and exit")

	mf.Parse(os.Args[1:])

	if help {
		usage(mf)
	}

	if ver {
		fmt.Printf("%s: %s\n", Z, ReadBuildInfo().Version)
		os.Exit(0)
	}

	args := mf.Args()
	if len(args) < 1 {
		Die("Insufficient arguments. Try '%s -h'", Z)
	}

	fp, ok := cmds[args[0]]
	if !ok {
		Die("unknown command %s. Try '%s -h'", args[0], Z)
	}

	fp(args[1:])
	Exit(0)
}

// Run the 'order' command
func order(args []string) {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Printf("%s order\n\nShow the byte order of this host.\n", Z)
		os.Exit(0)
	}

	if endian.IsBigEndian() {
		fmt.Println("big-endian")
	} else {
		fmt.Println("little-endian")
	}
}

func usage(fs *flag.FlagSet) {
	fs.SetOutput(os.Stdout)
	fmt.Printf(`%s: byte order conversion for Go types and binary record files.

Usage: %s [options] command [options ..] [args ..]

Commands:
  generate, gen, g   Generate ToBE/ToLE/FromBE/FromLE methods for Go types
  swap, s            Swap the byte order of every field in a record file
  order              Show the byte order of this host
  version            Show build information

Run '%s command -h' for help on each command.

Options:
`, Z, Z, Z)
	fs.PrintDefaults()
	os.Exit(0)
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
