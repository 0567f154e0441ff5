package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bodgit/pixelanimator"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func parseInt(name, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value '%s'", name, s)
	}
	return i, nil
}

const undefinedFlag = "flag provided but not defined: -"

// A negative repeat count looks like a flag so it never reaches convert
func usageError(c *cli.Context, err error, isSubcommand bool) error {
	if s := strings.TrimPrefix(err.Error(), undefinedFlag); s != err.Error() {
		if i, perr := strconv.Atoi("-" + s); perr == nil {
			p := &pixelanimator.Params{RepeatCount: i}
			return p.Validate()
		}
	}
	return err
}

func convert(c *cli.Context, stdout, stderr io.Writer) error {
	if c.NArg() != 4 {
		return pixelanimator.UsageError()
	}

	repeatCount, err := parseInt("repeat count", c.Args().Get(0))
	if err != nil {
		return err
	}

	frameTime, err := parseInt("frametime", c.Args().Get(1))
	if err != nil {
		return err
	}

	p := &pixelanimator.Params{
		RepeatCount: repeatCount,
		FrameTime:   frameTime,
		Input:       c.Args().Get(2),
		Output:      c.Args().Get(3),
		Colors:      c.Int("colors"),
	}
	if err := p.Validate(); err != nil {
		return err
	}

	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(stderr)
	}

	var db *pixelanimator.DB
	if file := c.String("db"); file != "" {
		if db, err = pixelanimator.NewDB(file); err != nil {
			return err
		}
		defer db.Close()
	}

	pa := pixelanimator.New(db, log.New(stdout, "", 0), logger)

	_, err = pa.Convert(p)
	return err
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "pixelanimator"
	app.Usage = "Convert an image to a pixelmap for the Player Arduino sketch"
	app.Version = "1.0.0"
	app.ArgsUsage = "REPEATCOUNT FRAMETIME INPUT OUTPUT"
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "colors",
			EnvVars: []string{"PIXELANIMATOR_COLORS"},
			Usage:   "reduce the image to at most `N` colors (2-256, 0 disables)",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PIXELANIMATOR_DB"},
			Usage:   "cache converted pixelmaps in the database at `FILE`",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.OnUsageError = usageError

	app.Action = func(c *cli.Context) error {
		return convert(c, stdout, stderr)
	}

	return app
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
