// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher2600core/cartridgeloader"
	"github.com/jetsetilly/gopher2600core/hardware"
	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
	"github.com/jetsetilly/gopher2600core/hardware/tia/framemanager"
	"github.com/jetsetilly/gopher2600core/logger"
	"github.com/jetsetilly/gopher2600core/modalflag"
	"github.com/jetsetilly/gopher2600core/statsview"
	"github.com/jetsetilly/gopher2600core/wavwriter"
)

// the value returned to the operating system when the program fails
const exitFailure = 10

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("DETECT", "RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitFailure
	}

	switch md.Mode() {
	case "DETECT":
		err = detect(md)
	case "RUN":
		err = run(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitFailure
	}

	return 0
}

// cartridge loader for the single file argument of the current mode
func loaderFromArgs(md *modalflag.Modes, mapping string) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0), mapping), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

func detect(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping")
	md.AdditionalHelp("prints the description of the cartridge mapping")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := loaderFromArgs(md, *mapping)
	if err != nil {
		return err
	}

	cart, err := cl.Cartridge()
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, cart.Description())

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping")
	tv := md.AddString("tv", "NTSC", "television specification: NTSC, PAL, SECAM")
	frames := md.AddInt("frames", 60, "number of frames to run")
	seed := md.AddInt64("seed", 0, "seed for the random power-on state. zero for a random seed")
	wav := md.AddString("wav", "", "record audio to a WAV file")
	png := md.AddString("png", "", "save the last frame to a PNG file")
	dot := md.AddString("memviz", "", "write a graphviz dot file of the VCS after the run")
	stats := md.AddBool("statsview", false, "launch the runtime statistics server")
	log := md.AddBool("log", false, "echo the log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
	}

	if *stats {
		statsview.Launch(md.Output, statsview.Address)
	}

	spec, err := specification.SearchSpec(*tv)
	if err != nil {
		return err
	}

	cl, err := loaderFromArgs(md, *mapping)
	if err != nil {
		return err
	}

	cart, err := cl.Cartridge()
	if err != nil {
		return err
	}

	vcs, err := hardware.NewVCS(spec, cart)
	if err != nil {
		return err
	}

	if *seed != 0 {
		vcs.Random.Reseed(*seed)
		if err := vcs.Reset(); err != nil {
			return err
		}
	}

	// traps are logged and the emulation continues
	vcs.SetTrapHandler(func(t bus.Trap) {
		logger.Logf(logger.Allow, "vcs", "trap: %v", t)
	})

	var last *framemanager.Surface
	vcs.TIA.FrameManager.OnNewFrame = func(s *framemanager.Surface) {
		last = s
	}

	var ww *wavwriter.WavWriter
	if *wav != "" {
		ww, err = wavwriter.New(*wav, spec.SampleRate())
		if err != nil {
			return err
		}
		vcs.TIA.AddAudioMixer(ww)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for n := 0; n < *frames; n++ {
		select {
		case <-intChan:
			n = *frames
		default:
			if err := vcs.RunFrames(1); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(md.Output, "%s: %d frames (%s)\n", cl.ShortName(), vcs.TIA.FrameManager.FrameNum(), cart.Description())

	if ww != nil {
		if err := ww.EndMixing(); err != nil {
			return err
		}
	}

	if *png != "" {
		if last == nil {
			return fmt.Errorf("no frame to save")
		}
		if err := savePNG(*png, last); err != nil {
			return err
		}
	}

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		memviz.Map(f, vcs)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
