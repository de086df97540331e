package main

import "github.com/arr-ai/abnf2lalrpop/cmd"

// Build-time tags, set with -ldflags "-X main.Version=...".
//
//nolint:gochecknoglobals
var (
	Version   = "0.1.0"
	GitCommit = "unspecified"
	BuildDate = "unspecified"
	BuildOS   = "unspecified"
)

func main() {
	cmd.Main(cmd.VersionTags{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		BuildOS:   BuildOS,
	})
}
