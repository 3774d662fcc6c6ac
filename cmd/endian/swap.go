// swap.go -- swap command handling
//
// (c) 2016 Sudhi Herle <sudhi@herle.net>
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
	"bufio"
	"fmt"
	"os"

	"github.com/opencoff/endian"
	"github.com/opencoff/go-utils"
	flag "github.com/opencoff/pflag"
	"k8s.io/klog/v2"
)

func swap(args []string) {
	fs := flag.NewFlagSet("swap", flag.ExitOnError)
	fs.Usage = func() {
		swapUsage(fs)
	}

	var outfile string
	var szstr string = "64k"
	var force bool
	var verbose int
	var bufsize uint64

	fs.StringVarP(&outfile, "outfile", "o", "", "Write the output to file `F`")
	fs.StringVarP(&szstr, "block-size", "B", szstr, "Use `S` as the I/O buffer size")
	fs.BoolVarP(&force, "overwrite", "", false, "Overwrite the output file if it exists")
	verboseFlag(fs, &verbose)

	err := fs.Parse(args)
	if err != nil {
		Die("%s", err)
	}

	args = fs.Args()
	if len(args) < 2 {
		Die("Insufficient args. Try '%s swap --help'", Z)
	}

	if bufsize, err = utils.ParseSize(szstr); err != nil {
		Die("%s", err)
	}

	l, err := endian.ParseLayout(args[0])
	if err != nil {
		Die("%s", err)
	}

	initLog(verbose)

	infile := args[1]

	var sz uint64
	if len(outfile) > 0 && outfile != "-" {
		sz, err = endian.SwapFileTo(outfile, infile, l, force, bufsize)
	} else {
		wr := bufio.NewWriter(os.Stdout)
		if sz, err = endian.SwapFile(wr, infile, l, bufsize); err == nil {
			err = wr.Flush()
		}
	}
	if err != nil {
		Die("%s", err)
	}

	klog.V(2).InfoS("swapped", "file", infile, "bytes", sz, "layout", l.String())
	if verbose > 0 {
		Warn("%s: %s in %d records of %s", infile, utils.HumanizeSize(sz),
			sz/uint64(l.Size()), l)
	}
}

func swapUsage(fs *flag.FlagSet) {
	fmt.Printf(`%s swap: Reverse the byte order of every field in a file of fixed size records.

Usage: %s swap [options] layout infile

LAYOUT is a comma separated list of fields describing one record, e.g.

    u16,u16,u32,[4]u8,f64,pad3

Field types are u8, i8, byte, bool, u16, i16, u32, i32, f32, u64, i64, f64,
c64 and c128; "[N]" repeats a field N times and padN skips N bytes. The
size of INFILE must be a whole number of records. Swapping is its own
inverse: it converts big-endian records to little-endian and back.

Unless '-o' is used, %s writes the output to STDOUT. The output file may be
the input file when '--overwrite' is given.

Options:
`, Z, Z, Z)

	fs.PrintDefaults()
	os.Exit(0)
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
