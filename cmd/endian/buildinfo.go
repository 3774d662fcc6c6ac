// buildinfo.go - build information for the version command
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
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/opencoff/endian"
	flag "github.com/opencoff/pflag"
)

// BuildInfo is the subset of the binary's build information we report
type BuildInfo struct {
	Tool      string            `json:"tool"`
	Version   string            `json:"version"`
	Module    string            `json:"module,omitempty"`
	GoVersion string            `json:"go_version"`
	GOOS      string            `json:"goos,omitempty"`
	GOARCH    string            `json:"goarch,omitempty"`
	Host      string            `json:"host_order"`
	Revision  string            `json:"revision,omitempty"`
	BuildTime string            `json:"build_time,omitempty"`
	Modified  bool              `json:"modified,omitempty"`
	Deps      map[string]string `json:"dependencies,omitempty"`
}

// ReadBuildInfo returns build information for the running binary.
func ReadBuildInfo() *BuildInfo {
	b := &BuildInfo{
		Tool:    Z,
		Version: Version,
		Host:    endian.Native().String(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}

	b.Module = bi.Main.Path
	b.GoVersion = bi.GoVersion
	if v := bi.Main.Version; len(v) > 0 && v != "(devel)" {
		b.Version = v
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
		case "vcs.time":
			b.BuildTime = s.Value
		case "vcs.modified":
			b.Modified = s.Value == "true"
		case "GOARCH":
			b.GOARCH = s.Value
		case "GOOS":
			b.GOOS = s.Value
		}
	}

	if len(bi.Deps) > 0 {
		b.Deps = make(map[string]string, len(bi.Deps))
		for _, d := range bi.Deps {
			if d.Replace != nil {
				d = d.Replace
			}
			b.Deps[d.Path] = d.Version
		}
	}
	return b
}

// String returns a human-readable representation of build information.
func (b *BuildInfo) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s\n", b.Tool, b.Version)
	if len(b.Module) > 0 {
		fmt.Fprintf(&sb, "Module: %s\n", b.Module)
	}
	fmt.Fprintf(&sb, "Go Toolchain: %s\n", b.GoVersion)
	fmt.Fprintf(&sb, "GO: %s-%s (%s)\n", b.GOOS, b.GOARCH, b.Host)
	if len(b.Revision) > 0 {
		fmt.Fprintf(&sb, "Revision: %s", b.Revision)
		if b.Modified {
			sb.WriteString("+dirty")
		}
		sb.WriteString("\n")
	}
	if len(b.BuildTime) > 0 {
		fmt.Fprintf(&sb, "Build Time: %s\n", b.BuildTime)
	}
	return sb.String()
}

// JSON returns a JSON representation of build information.
func (b *BuildInfo) JSON() (string, error) {
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Run the 'version' command
func version(args []string) {
	var help, js bool

	fs := flag.NewFlagSet("version", flag.ExitOnError)
	fs.BoolVarP(&help, "help", "h", false, "Show this help and exit")
	fs.BoolVarP(&js, "json", "j", false, "Show build info as JSON")

	fs.Parse(args)

	if help {
		fs.SetOutput(os.Stdout)
		fmt.Printf(`%s version [options]

Show the version and build information of %s.

Options:
`, Z, Z)
		fs.PrintDefaults()
		os.Exit(0)
	}

	bi := ReadBuildInfo()
	if !js {
		fmt.Print(bi.String())
		return
	}

	s, err := bi.JSON()
	if err != nil {
		Die("%s", err)
	}
	fmt.Println(s)
}
