// This file is part of rtinput.
//
// rtinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rtinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rtinput.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/rtinput/backend"
	"github.com/jetsetilly/rtinput/backend/terminput"
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/config"
	"github.com/jetsetilly/rtinput/event"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/modalflag"
	"github.com/jetsetilly/rtinput/paths"
	"github.com/jetsetilly/rtinput/prefs"
	"github.com/jetsetilly/rtinput/userinput"
)

// time between samples of the input state.
const sampleInterval = 10 * time.Millisecond

// display is where snapshots are shown.
type display interface {
	show(s snapshot)
	close()
}

// teaDisplay runs a bubbletea program. the program runs in its own goroutine
// and collects snapshots from the snaps channel.
type teaDisplay struct {
	prog  *tea.Program
	snaps chan snapshot

	// done is closed when the program ends. err is the result of the program
	// and must not be read until done is closed
	done chan struct{}
	err  error
}

func newTeaDisplay() *teaDisplay {
	d := &teaDisplay{
		snaps: make(chan snapshot, 1),
	}
	d.prog = tea.NewProgram(model{snaps: d.snaps}, tea.WithAltScreen())
	d.start(d.prog.Start)
	return d
}

// start runs the program function in a new goroutine.
func (d *teaDisplay) start(run func() error) {
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		d.err = run()
	}()
}

// show drops the snapshot if the program has not collected the previous one.
func (d *teaDisplay) show(s snapshot) {
	select {
	case d.snaps <- s:
	default:
	}
}

func (d *teaDisplay) close() {
	close(d.snaps)
	<-d.done
	if d.err != nil {
		logger.Logf(logger.Allow, "inputprobe", "display: %v", d.err)
	}
}

// exited returns true if the program has ended.
func (d *teaDisplay) exited() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// terminalDisplay draws on the screen used by the terminal backend.
type terminalDisplay struct {
	backend *terminput.Backend
}

func (d terminalDisplay) show(s snapshot) {
	draw(d.backend.Screen(), s)
}

func (d terminalDisplay) close() {
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// exit values.
const (
	exitOK      = 0
	exitArgs    = 2
	exitConfig  = 10
	exitBackend = 20
)

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("PROBE", "KEYS", "CONFIG")
	md.AdditionalHelp("configuration overrides are of the form: key::value; key::value")
	cfgPath := md.AddString("config", "", "path to configuration file")
	cmdPrefs := md.AddString("prefs", "", "configuration overrides")
	saveLog := md.AddBool("log", false, "save log to resource directory on exit")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* %v\n", err)
		return exitArgs
	}

	if *cfgPath == "" {
		var err error
		*cfgPath, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintf(stderr, "* %v\n", err)
			return exitConfig
		}
	}

	prefs.PushCommandLineStack(*cmdPrefs)
	cfg, err := config.Load(*cfgPath)
	unused := prefs.PopCommandLineStack()
	if err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		return exitConfig
	}
	if unused != "" {
		fmt.Fprintf(stderr, "* unused prefs: %s\n", unused)
	}

	cfg.ApplyLogging(stderr)

	switch md.Mode() {
	case "CONFIG":
		md.NewMode()
		if p, err := md.Parse(); p != modalflag.ParseContinue {
			return parseExit(p, err, stderr)
		}
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(stderr, "* %v\n", err)
			return exitConfig
		}
		stdout.Write(data)
		return exitOK

	case "KEYS":
		md.NewMode()
		md.AdditionalHelp("prints key presses until escape is pressed or the timeout expires")
		timeout := md.AddFloat64("timeout", event.NoTimeout, "seconds to wait for each key. negative waits forever")
		keyList := md.AddString("keys", "", "comma separated list of keys to wait for")
		if p, err := md.Parse(); p != modalflag.ParseContinue {
			return parseExit(p, err, stderr)
		}

		b, err := backend.Open(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "* %v\n", err)
			return exitBackend
		}
		defer b.Close()
		if *saveLog {
			defer writeLog(b.Name(), stderr)
		}

		ctx := event.NewContext(b, nil, cfg.ContextOptions()...)
		if err := keys(ctx, *timeout, *keyList, stdout); err != nil {
			fmt.Fprintf(stderr, "* %v\n", err)
			return exitBackend
		}
		return exitOK
	}

	md.NewMode()
	watch := md.AddBool("watch", false, "reload configuration file when it changes")
	if p, err := md.Parse(); p != modalflag.ParseContinue {
		return parseExit(p, err, stderr)
	}

	b, err := backend.Open(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		return exitBackend
	}
	defer b.Close()

	// log echo would corrupt the display
	logger.SetEcho(nil)

	if *saveLog {
		defer writeLog(b.Name(), stderr)
	}

	var watcher *config.Watcher
	if *watch {
		watcher, err = config.Watch(*cfgPath)
		if err != nil {
			fmt.Fprintf(stderr, "* %v\n", err)
			return exitConfig
		}
		defer watcher.Close()
	}

	win := &window{backend: b, cfg: cfg}
	ctx := event.NewContext(b, nil, cfg.ContextOptions()...)
	p := newProbe(ctx, win)

	var disp display
	if t, ok := b.(*terminput.Backend); ok {
		disp = terminalDisplay{backend: t}
	} else {
		disp = newTeaDisplay()
	}
	defer disp.close()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	var status string

	for {
		select {
		case <-intChan:
			return exitOK
		default:
		}

		if td, ok := disp.(*teaDisplay); ok && td.exited() {
			return exitOK
		}

		if watcher != nil {
			c, err := watcher.Poll()
			if err != nil {
				status = err.Error()
			} else if c != nil {
				win.cfg = c
				status = "configuration reloaded"
			}
		}

		s, err := p.sample()
		if err != nil {
			logger.Log(logger.Allow, "inputprobe", err)
			status = err.Error()
		}
		s.status = status

		disp.show(s)
		if s.quit {
			return exitOK
		}

		time.Sleep(sampleInterval)
	}
}

func parseExit(p modalflag.ParseResult, err error, stderr io.Writer) int {
	if p == modalflag.ParseHelp {
		return exitOK
	}
	fmt.Fprintf(stderr, "* %v\n", err)
	return exitArgs
}

// keys prints key presses until escape is pressed or no key is pressed
// before the timeout.
func keys(ctx *event.Context, timeout float64, keyList string, out io.Writer) error {
	var list []string
	if keyList != "" {
		for _, k := range strings.Split(keyList, ",") {
			list = append(list, userinput.NormaliseKeyName(k))
		}
		if !slices.Contains(list, "escape") {
			list = append(list, "escape")
		}
	}

	start := clock.NewClockWithSource(ctx.Source())

	for {
		k, err := ctx.WaitKeys(timeout, list)
		if err != nil {
			return err
		}
		if len(k) == 0 {
			fmt.Fprintln(out, "timeout")
			return nil
		}
		fmt.Fprintf(out, "%9.4f %s\n", start.Elapsed(), k[0])
		if k[0] == "escape" {
			return nil
		}
	}
}

func writeLog(backendName string, stderr io.Writer) {
	fn, err := paths.ResourcePath("logs", paths.UniqueFilename("inputprobe", backendName))
	if err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		return
	}

	f, err := os.Create(fn)
	if err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		return
	}
	defer f.Close()

	logger.Write(f)
}
