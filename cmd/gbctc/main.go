package main

import (
	"bytes"
	"image/png"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/gbctc"
	"github.com/bodgit/gbctc/asm"
	"github.com/bodgit/gbctc/image"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*gbctc.Converter, func() error, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	if c.String("db") == "" {
		return gbctc.New(nil, logger, c.Bool("reduce")), func() error { return nil }, nil
	}

	cache, err := gbctc.NewCache(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return gbctc.New(cache, logger, c.Bool("reduce")), cache.Close, nil
}

func write(w io.Writer, r *gbctc.Result, binary bool) error {
	if binary {
		b, err := r.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return asm.Encode(w, r)
}

func outputFile(file string, binary bool) string {
	ext := ".asm"
	if binary {
		ext = ".bin"
	}
	return strings.TrimSuffix(file, filepath.Ext(file)) + ext
}

func main() {
	app := cli.NewApp()

	app.Name = "gbctc"
	app.Usage = "Game Boy Color tile converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GBCTC_DB"},
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.BoolFlag{
			Name:  "reduce",
			Usage: "reduce tiles with more than 4 colors instead of failing",
		},
		&cli.BoolFlag{
			Name:  "binary",
			Usage: "write binary tile data instead of assembler source",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to tile data",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to `FILE` instead of stdout",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				r, err := conv.ConvertFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				// Nothing is written unless the conversion succeeded
				b := new(bytes.Buffer)
				if err := write(b, r, c.Bool("binary")); err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.String("output") == "" {
					if _, err := os.Stdout.Write(b.Bytes()); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				if err := ioutil.WriteFile(c.String("output"), b.Bytes(), 0644); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image in a directory tree",
			Description: "Each image is written alongside the original with an .asm or .bin extension",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				binary := c.Bool("binary")
				if err := conv.ConvertDir(c.Args().First(), func(file string, r *gbctc.Result) error {
					b := new(bytes.Buffer)
					if err := write(b, r, binary); err != nil {
						return err
					}
					return ioutil.WriteFile(outputFile(file, binary), b.Bytes(), 0644)
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render binary tile data as a PNG image",
			Description: "",
			ArgsUsage:   "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				in, err := os.Open(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer in.Close()

				m, err := image.Decode(in)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				out, err := os.Create(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer out.Close()

				if err := png.Encode(out, m); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
