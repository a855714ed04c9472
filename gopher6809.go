// This file is part of Gopher6809.
//
// Gopher6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6809.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher6809/curated"
	"github.com/jetsetilly/gopher6809/hardware"
	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/hardware/disk"
	"github.com/jetsetilly/gopher6809/hardware/preferences"
	"github.com/jetsetilly/gopher6809/hardware/sam"
	"github.com/jetsetilly/gopher6809/logger"
	"github.com/jetsetilly/gopher6809/modalflag"
	"github.com/jetsetilly/gopher6809/prefs"
	"github.com/jetsetilly/gopher6809/statsview"
	"github.com/jetsetilly/gopher6809/terminal"
	"github.com/jetsetilly/gopher6809/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md))
}

// launch returns the exit value for the program.
func launch(md *modalflag.Modes) int {
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "NEWDISK")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "HEADLESS":
		err = headless(md)

	case "NEWDISK":
		err = newDisk(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the flags that are common to the RUN and HEADLESS modes
type machineFlags struct {
	roms     [sam.NumBanks]*string
	disks    [disk.NumDrives]*string
	cassette *string
	wav      *string
	keys     *string
	prefs    *string
	log      *bool
	memviz   *string
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	f := &machineFlags{}
	for i := range f.roms {
		f.roms[i] = md.AddString(fmt.Sprintf("rom%d", i), "", fmt.Sprintf("ROM image for bank %d", i))
	}
	for i := range f.disks {
		f.disks[i] = md.AddString(fmt.Sprintf("disk%d", i), "", fmt.Sprintf("disk image for drive %d", i))
	}
	f.cassette = md.AddString("cassette", "", "cassette recording (WAV or MP3)")
	f.wav = md.AddString("wav", "", "record audio to wav file")
	f.keys = md.AddString("keys", "", "text to type once the machine has started")
	f.prefs = md.AddString("prefs", "", "preferences string (eg. disk.writeback::false; audio.samplerate::44100)")
	f.log = md.AddBool("log", false, "echo debugging log to stdout")
	f.memviz = md.AddString("memviz", "", "write graph of machine state to file on exit")
	return f
}

// create the machine and load everything asked for on the command line. if
// loading fails then anything already loaded is released.
func (f *machineFlags) newMachine(output io.Writer) (_ *hardware.Machine, rerr error) {
	if *f.log {
		logger.SetEcho(output)
	}

	prefs.PushCommandLineStack(*f.prefs)
	p, err := preferences.NewPreferences()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		logger.Logf(logger.Allow, "gopher6809", "unused preferences: %s", unused)
	}

	m, err := hardware.NewMachine(p, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr != nil {
			if err := m.Close(); err != nil {
				logger.Logf(logger.Allow, "gopher6809", "%v", err)
			}
		}
	}()

	loaded := false
	for i, r := range f.roms {
		if *r == "" {
			continue
		}
		if err := m.LoadROM(i, *r); err != nil {
			return nil, err
		}
		loaded = true
	}
	if !loaded {
		return nil, curated.Errorf("no ROM images specified")
	}

	for i, d := range f.disks {
		if *d == "" {
			continue
		}
		if err := m.LoadDisk(i, *d); err != nil {
			return nil, err
		}
	}

	if *f.cassette != "" {
		if err := m.LoadCassette(*f.cassette); err != nil {
			return nil, err
		}
	}

	if *f.wav != "" {
		aw, err := wavwriter.New(*f.wav, m.Sound.SampleRate())
		if err != nil {
			return nil, err
		}
		m.AttachAudio(aw)
	}

	m.Reset()

	if *f.keys != "" {
		m.QueueKeys(strings.ReplaceAll(*f.keys, `\n`, "\n"))
	}

	return m, nil
}

// shut down the machine and write the state graph if it was asked for
func (f *machineFlags) close(m *hardware.Machine) error {
	if *f.memviz != "" {
		mf, err := os.Create(*f.memviz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		m.Dump(mf)
		if err := mf.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}
	return m.Close()
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	stats := md.AddBool("statsview", false, "run stats server (if available)")
	statsAddr := md.AddString("statsaddr", statsview.Address, "address of stats server")

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}

	m, err := f.newMachine(md.Output)
	if err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output, *statsAddr)
		} else {
			fmt.Fprintln(md.Output, "statsview not available in this build")
		}
	}

	tm, err := terminal.Open("", md.Output)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	fields := 0
	err = m.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		case ev, ok := <-tm.Events():
			if !ok || ev.Quit {
				return false, nil
			}
			m.Keyboard.QueueKey(ev.Key, ev.Shift)
		default:
		}

		// the screen is redrawn about twenty times a second
		fields++
		if fields%3 == 0 {
			tm.Render(m.TextScreen())
			tm.Status(fmt.Sprintf("PC=%04x  %s", m.CPU.PC, m.Cassette))
		}

		return true, nil
	})

	if cerr := tm.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := f.close(m); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

func headless(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	fields := md.AddInt("fields", 300, "number of video fields to run")

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}

	m, err := f.newMachine(md.Output)
	if err != nil {
		return err
	}

	err = m.RunForFields(*fields)

	fmt.Fprintln(md.Output, m.CPU)
	next, _ := cpu.Disassemble(m.SAM, m.CPU.PC)
	fmt.Fprintln(md.Output, next)
	for _, r := range m.TextScreen() {
		fmt.Fprintf(md.Output, "|%s|\n", r)
	}

	if cerr := f.close(m); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

func newDisk(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("a single filename is required")
	}

	fn := md.GetArg(0)
	if err := disk.CreateBlankImage(fn); err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "created %s (%d bytes)\n", fn, disk.ImageSize)

	return nil
}
