package cmd

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/abnf2lalrpop/abnf"
	"github.com/arr-ai/abnf2lalrpop/lalrpop"
)

func convert(stdin io.Reader) cli.ActionFunc {
	return func(c *cli.Context) error {
		switch {
		case c.Bool("help"):
			return cli.ShowAppHelp(c)
		case c.Bool("version"):
			cli.ShowVersion(c)
			return nil
		}
		if c.NArg() > 1 {
			return cli.NewExitError(fmt.Sprintf("Extra arg: %q", c.Args().Get(1)), exitUsage)
		}
		source := c.Args().First()

		var input, filename string
		switch source {
		case "", "-":
			buf, err := io.ReadAll(stdin)
			if err != nil {
				return cli.NewExitError(err.Error(), exitUsage)
			}
			input = string(buf)
		default:
			buf, err := os.ReadFile(source)
			if err != nil {
				return cli.NewExitError(err.Error(), exitUsage)
			}
			input = string(buf)
			filename = source
		}
		logrus.Debugf("read %d bytes from %q", len(input), source)
		if !utf8.ValidString(input) {
			return cli.NewExitError(fmt.Sprintf("%s: stream did not contain valid UTF-8", sourceName(source)), exitUsage)
		}

		rules, err := abnf.ParseWithFilename(input, filename)
		if err != nil {
			if se, ok := err.(abnf.SyntaxError); ok {
				return cli.NewExitError(se.Context(), exitSyntax)
			}
			return cli.NewExitError(err.Error(), exitSyntax)
		}
		logrus.Debugf("parsed %d rules\n%s", len(rules), abnf.Dump(rules))

		_, err = lalrpop.Write(c.App.Writer, rules)
		return err
	}
}

func sourceName(source string) string {
	if source == "" || source == "-" {
		return "<stdin>"
	}
	return source
}
