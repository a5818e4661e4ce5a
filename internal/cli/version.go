package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/buildinfo"
)

// buildDetails describes the running binary. Release builds get their
// values injected through internal/buildinfo ldflags; otherwise the
// module info the toolchain embeds is used.
type buildDetails struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuiltAt   string `json:"builtAt,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Stubbed in tests.
var readBuildInfo = debug.ReadBuildInfo

func gatherBuildDetails() buildDetails {
	d := buildDetails{
		Version:   buildinfo.Version,
		Commit:    buildinfo.Commit,
		BuiltAt:   buildinfo.Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if ok {
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
		if d.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			d.Version = bi.Main.Version
		}
		if d.Commit == "" {
			d.Commit = settings["vcs.revision"]
		}
		if d.BuiltAt == "" {
			d.BuiltAt = settings["vcs.time"]
		}
		d.Dirty = settings["vcs.modified"] == "true"
		if goos, goarch := settings["GOOS"], settings["GOARCH"]; goos != "" && goarch != "" {
			d.Platform = goos + "/" + goarch
		}
		if bi.GoVersion != "" {
			d.GoVersion = bi.GoVersion
		}
	}

	if d.Version == "" {
		d.Version = "devel"
	}
	return d
}

// describe renders the one-line human form:
//
//	tronco v1.4.0 (abc1234, built 2026-05-01T10:00:00Z, dirty)
func (d buildDetails) describe() string {
	line := "tronco " + d.Version

	var extra []string
	if c := d.Commit; c != "" {
		if len(c) > 7 {
			c = c[:7]
		}
		extra = append(extra, c)
	}
	if d.BuiltAt != "" {
		extra = append(extra, "built "+d.BuiltAt)
	}
	if d.Dirty {
		extra = append(extra, "dirty")
	}
	if len(extra) > 0 {
		line += " ("
		for i, e := range extra {
			if i > 0 {
				line += ", "
			}
			line += e
		}
		line += ")"
	}
	return line
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := gatherBuildDetails()

		if isJSONOutput() {
			outputSuccess(d, nil)
			return nil
		}

		fmt.Println(d.describe())
		fmt.Printf("%s %s\n", d.GoVersion, d.Platform)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
