package main

import (
	"os"

	"github.com/codegangsta/cli"
	"github.com/fatih/color"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fail(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "gifmanip"
	app.Usage = "Turns a still image into a looping spinning, flipping or strobing animation."
	app.UsageText = "gifmanip [global options] command -i INFILE -o OUTFILE -s SPEED [options]\n\n" +
		/*      */ "   EXAMPLE: gifmanip strobe -i test.jpg -o test.gif -d c -s 100 -f orange"
	app.Author = "Ken Mininger"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "Read canvas sizes, speeds and extra colors from the yaml `FILE`.",
		},
		cli.BoolFlag{
			Name:  "preview,p",
			Usage: "Play the finished animation in the terminal.",
		},
		cli.IntFlag{
			Name:  "preview-loops",
			Usage: "Play the preview `N` times.",
			Value: 3,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "spin",
			Usage:  "Four frame quarter-turn spin.",
			Flags:  append(commonFlags(), directionFlag),
			Action: run(spinJob),
		},
		{
			Name:   "flip",
			Usage:  "Two frame flip: upside down, then mirrored.",
			Flags:  commonFlags(),
			Action: run(flipJob),
		},
		{
			Name:   "finespin",
			Usage:  "Smooth eighteen frame spin, 20 degrees at a time.",
			Flags:  append(commonFlags(), directionFlag),
			Action: run(fineSpinJob),
		},
		{
			Name:   "strobe",
			Usage:  "Quarter-turn spin flashing a solid color between turns.",
			Flags:  append(commonFlags(), directionFlag, flashFlag),
			Action: run(strobeJob),
		},
	}
	return app
}

var (
	directionFlag = cli.StringFlag{
		Name:  "direction,d",
		Usage: "Clockwise (c) or counterclockwise (cc).",
		Value: "c",
	}
	flashFlag = cli.StringFlag{
		Name:  "flash,f",
		Usage: "Flash `COLOR`: red, yellow, orange, a configured name or #rrggbb.",
	}
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "infile,i",
			Usage: "Picture to animate.",
		},
		cli.StringFlag{
			Name:  "outfile,o",
			Usage: "Output file. .gif is added unless it ends in .gif, .png or .apng.",
		},
		cli.IntFlag{
			Name:  "speed,s",
			Usage: "Milliseconds per frame. The lower the number, the faster the spin (100 makes a good clean spin).",
		},
	}
}

var (
	warn    = color.New(color.FgYellow).PrintlnFunc()
	fail    = color.New(color.FgRed).PrintlnFunc()
	success = color.New(color.FgGreen).PrintlnFunc()
)

func exit(msg string, code int) error {
	return cli.NewExitError(color.RedString(msg), code)
}
