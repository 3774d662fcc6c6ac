// gen.go -- generate Endian methods
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
	goflag "flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/opencoff/endian/internal/config"
	"github.com/opencoff/endian/internal/gen"
	"github.com/opencoff/go-fio"
	flag "github.com/opencoff/pflag"
	"k8s.io/klog/v2"
)

// Run the generate command
func generate(args []string) {
	var help, force bool
	var typs, tags []string
	var output, cfgfile, buildTag string
	var verbose int

	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	fs.BoolVarP(&help, "help", "h", false, "Show this help and exit")
	fs.StringSliceVarP(&typs, "type", "t", nil, "Generate methods for type `T` (repeat or comma separate)")
	fs.StringVarP(&output, "output", "o", "", "Write the generated code to file `F`")
	fs.StringVarP(&cfgfile, "config", "c", "", "Read generator settings from YAML file `C`")
	fs.StringSliceVarP(&tags, "tags", "", nil, "Build tags used to load the package")
	fs.StringVarP(&buildTag, "build-tag", "", "", "Add '//go:build `E`' to the generated file")
	verboseFlag(fs, &verbose)
	fs.BoolVarP(&force, "overwrite", "", true, "Overwrite the output file if it exists")

	fs.Parse(args)

	if help {
		fs.SetOutput(os.Stdout)
		fmt.Printf(`%s generate|gen|g [options] [dir]

Generate ToBE, ToLE, FromBE and FromLE methods for the named types of the
Go package in DIR (default: the current directory). Every field of a type
must be a number, a bool, an array of such, a struct in the same run or a
type that already has the four methods.

Typical use in a source file:

    //go:generate go run github.com/opencoff/endian/cmd/endian generate -t Header,Record

Options:
`, Z)
		fs.PrintDefaults()
		os.Exit(0)
	}

	cfg := &config.Config{}
	if len(cfgfile) > 0 {
		var err error
		if cfg, err = config.Load(cfgfile); err != nil {
			Die("%s", err)
		}
	}

	// command line wins over the config file
	if args := fs.Args(); len(args) > 0 {
		cfg.Package = args[0]
	}
	if len(typs) > 0 {
		cfg.Types = typs
	}
	if len(tags) > 0 {
		cfg.Tags = tags
	}
	if len(buildTag) > 0 {
		cfg.BuildTag = buildTag
	}
	if len(output) > 0 {
		abs, err := filepath.Abs(output)
		if err != nil {
			Die("%s: %s", output, err)
		}
		cfg.Output = abs
	}
	if fs.Changed("verbose") {
		cfg.Verbose = verbose
	}

	if err := cfg.Validate(); err != nil {
		Die("%s. Try '%s generate -h'", err, Z)
	}

	initLog(cfg.Verbose)

	pkg, fset, err := gen.Load(cfg.Package, cfg.Tags)
	if err != nil {
		Die("%s", err)
	}

	g := gen.New(pkg, fset)
	src, err := g.Generate(&gen.Options{
		Types:    cfg.Types,
		BuildTag: cfg.BuildTag,
		Command:  "endian " + strings.Join(os.Args[1:], " "),
	})
	if err != nil {
		Die("%s", err)
	}

	fn := cfg.OutputFile()
	writeFile(fn, src, force, 0644)
	klog.V(1).InfoS("wrote", "file", fn, "bytes", len(src))
}

// verboseFlag adds the -v/--verbose level shared by all commands
func verboseFlag(fs *flag.FlagSet, v *int) {
	fs.IntVarP(v, "verbose", "v", 0, "Log progress at verbosity `N`")
}

// initLog routes klog to stderr at verbosity v
func initLog(v int) {
	kfs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(kfs)
	kfs.Set("logtostderr", "true")
	kfs.Set("v", strconv.Itoa(v))
}

func writeFile(fn string, buf []byte, force bool, perm os.FileMode) {
	var opts uint32

	if force {
		opts |= fio.OPT_OVERWRITE
	}
	sf, err := fio.NewSafeFile(fn, opts, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		Die("%s: %s", fn, err)
	}

	AtExit(sf.Abort)
	defer sf.Abort()

	if _, err = sf.Write(buf); err != nil {
		Die("%s: %s", fn, err)
	}

	if err = sf.Close(); err != nil {
		Die("%s: %s", fn, err)
	}
}

// vim: ft=go:sw=8:ts=8:noexpandtab:tw=98:
