package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/codegangsta/cli"
	"github.com/kmininger/gifmanip"
)

// job describes one kind of animation the command line can build.
type job struct {
	noun    string // "spin"
	verb    string // "spinning"
	title   string // "Spinning"
	variant func(cfg gifmanip.Config) gifmanip.Variant
	// sequence returns the frame sequencer and a short description of it
	// for the progress message.
	sequence func(c *cli.Context, cfg gifmanip.Config, bg color.Color) (gifmanip.Sequencer, string, error)
}

var spinJob = job{
	noun:    "spin",
	verb:    "spinning",
	title:   "Spinning",
	variant: func(cfg gifmanip.Config) gifmanip.Variant { return cfg.Spin },
	sequence: func(c *cli.Context, cfg gifmanip.Config, bg color.Color) (gifmanip.Sequencer, string, error) {
		dir, err := direction(c)
		if err != nil {
			return nil, "", err
		}
		return gifmanip.Spin{Direction: dir, Background: bg}, dir.String(), nil
	},
}

var flipJob = job{
	noun:    "flip",
	verb:    "flipping",
	title:   "Flipping",
	variant: func(cfg gifmanip.Config) gifmanip.Variant { return cfg.Flip },
	sequence: func(c *cli.Context, cfg gifmanip.Config, bg color.Color) (gifmanip.Sequencer, string, error) {
		return gifmanip.Flip{}, "", nil
	},
}

var fineSpinJob = job{
	noun:    "spin",
	verb:    "spinning",
	title:   "Spinning",
	variant: func(cfg gifmanip.Config) gifmanip.Variant { return cfg.FineSpin },
	sequence: func(c *cli.Context, cfg gifmanip.Config, bg color.Color) (gifmanip.Sequencer, string, error) {
		dir, err := direction(c)
		if err != nil {
			return nil, "", err
		}
		seq := gifmanip.NewFineSpin(dir)
		seq.Background = bg
		return seq, dir.String(), nil
	},
}

var strobeJob = job{
	noun:    "spin",
	verb:    "spinning",
	title:   "Spinning",
	variant: func(cfg gifmanip.Config) gifmanip.Variant { return cfg.Strobe },
	sequence: func(c *cli.Context, cfg gifmanip.Config, bg color.Color) (gifmanip.Sequencer, string, error) {
		dir, err := direction(c)
		if err != nil {
			return nil, "", err
		}
		name := c.String("flash")
		if name == "" {
			return nil, "", exit("Flash color? red, yellow, or orange: use -f", 1)
		}
		flash, err := cfg.StrobeColor(name)
		if err != nil {
			return nil, "", exit("You specified a weird or unsupported color. Try again.", 1)
		}
		seq := gifmanip.Strobe{Direction: dir, Color: flash, Background: bg}
		return seq, fmt.Sprintf("%s and strobing %s", dir, name), nil
	},
}

func direction(c *cli.Context) (gifmanip.Direction, error) {
	dir, err := gifmanip.ParseDirection(c.String("direction"))
	if err != nil {
		return dir, exit("You provided a direction, but it wasn't c or cc.", 1)
	}
	return dir, nil
}

func run(j job) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		infile, outfile := c.String("infile"), c.String("outfile")
		if infile == "" {
			return exit("Input file not provided: use -i", 1)
		}
		if outfile == "" {
			return exit("Output file not provided: use -o", 1)
		}

		cfg, err := gifmanip.ReadConfigFile(c.GlobalString("config"))
		if err != nil {
			return exit(err.Error(), 1)
		}
		variant := j.variant(cfg)
		speed := variant.Speed
		if c.IsSet("speed") {
			speed = c.Int("speed")
		}
		if speed <= 0 {
			return exit("Give me some speed: use -s", 1)
		}
		bg, err := cfg.BackgroundColor()
		if err != nil {
			return exit(err.Error(), 1)
		}

		seq, desc, err := j.sequence(c, cfg, bg)
		if err != nil {
			return err
		}

		if gifmanip.IsTerminal(os.Stdout) {
			fmt.Println(logo)
		}

		src, err := gifmanip.Open(infile)
		if err != nil {
			return exit("Error: Cannot open input file for reading or input file not found.", 1)
		}
		fmt.Println("Opened", infile, "for", j.verb+".")
		if src.Small(variant.Warn) {
			warn(fmt.Sprintf("WARNING: Image smaller than %dx%d. The %s may look weird.", variant.Warn, variant.Warn, j.noun))
		}

		img := variant.Canvas.Fit(src.Flatten(bg))
		anim, err := gifmanip.Synthesize(img, seq, gifmanip.Speed(speed))
		if err != nil {
			return exit(err.Error(), 1)
		}

		if desc != "" {
			desc += " "
		}
		fmt.Printf("%s %s %swith speed = %d.\n", j.title, infile, desc, speed)

		out := gifmanip.OutputPath(outfile)
		if err := anim.Save(out); err != nil {
			return exit("Error: Cannot open output file for writing.", 1)
		}
		success(fmt.Sprintf("%s GIF created: %s", j.title, out))

		if c.GlobalBool("preview") && gifmanip.IsTerminal(os.Stdout) {
			err := gifmanip.NewPlayer(os.Stdout).Play(anim, c.GlobalInt("preview-loops"))
			if err == gifmanip.ErrInterrupted {
				return cli.NewExitError("", 130)
			}
			return err
		}
		return nil
	}
}

const logo = `
   ________________   __  ___            _     
  / ____/  _/ ____/  /  |/  /___ _____  (_)___ 
 / / __ / // /_     / /|_/ / __ ` + "`" + `/ __ \/ / __ \
/ /_/ // // __/    / /  / / /_/ / / / / / /_/ /
\____/___/_/      /_/  /_/\__,_/_/ /_/_/ .___/ 
                                      /_/      `
