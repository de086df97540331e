package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	exitSyntax = 1
	exitUsage  = 2
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, c.App.Version)
	}
}

func Main(info VersionTags) {
	os.Exit(Run(os.Args, os.Stdin, os.Stdout, os.Stderr, info))
}

// Run executes the command line in args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, info VersionTags) int {
	code := 0
	app := newApp(stdin, info)
	app.Writer = stdout
	app.ErrWriter = stderr
	app.ExitErrHandler = func(_ *cli.Context, err error) {
		if err == nil {
			return
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		code = exitUsage
		if ec, ok := err.(cli.ExitCoder); ok {
			code = ec.ExitCode()
		}
	}

	logrus.Debugf("%s %s (commit %s, built %s on %s)",
		app.Name, info.Version, info.GitCommit, info.BuildDate, info.BuildOS)
	if err := app.Run(permute(args)); err != nil && code == 0 {
		fmt.Fprintln(stderr, err)
		code = exitUsage
	}
	return code
}

func newApp(stdin io.Reader, info VersionTags) *cli.App {
	app := cli.NewApp()

	app.Name = "abnf2lalrpop"
	app.Usage = "convert an ABNF-like grammar to a LALRPOP grammar"
	app.UsageText = "abnf2lalrpop [-h | -v] [FILE]"
	app.ArgsUsage = "[FILE]"
	app.Version = info.Version
	app.Action = convert(stdin)
	// Help and version are plain flags handled by the action, so that "help"
	// is read as a file name rather than dispatched as a command.
	app.HideHelp = true
	app.HideVersion = true
	app.Flags = []cli.Flag{cli.HelpFlag, cli.VersionFlag}
	app.OnUsageError = func(_ *cli.Context, err error, _ bool) error {
		return cli.NewExitError(err.Error(), exitUsage)
	}

	return app
}

// permute moves flags ahead of positional arguments so that flags are
// recognized wherever they appear. Everything after "--" stays positional.
func permute(args []string) []string {
	if len(args) == 0 {
		return args
	}
	flags := []string{args[0]}
	var positional []string
	for i, arg := range args[1:] {
		if arg == "--" {
			positional = append(positional, args[i+2:]...)
			break
		}
		if len(arg) > 1 && arg[0] == '-' {
			flags = append(flags, arg)
		} else {
			positional = append(positional, arg)
		}
	}
	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}
