// This file is part of Sixtyfive.
//
// Sixtyfive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sixtyfive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sixtyfive.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/sixtyfive/disassembly"
	"github.com/jetsetilly/sixtyfive/hardware"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/execution"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/interpreter"
	"github.com/jetsetilly/sixtyfive/logger"
	"github.com/jetsetilly/sixtyfive/modalflag"
	"github.com/jetsetilly/sixtyfive/prefs"
	"github.com/jetsetilly/sixtyfive/program"
	"github.com/jetsetilly/sixtyfive/script"
	"github.com/jetsetilly/sixtyfive/statsview"
	"github.com/jetsetilly/sixtyfive/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stdin))
}

// launch the program in the mode given in args. the return value is the exit
// status of the program.
func launch(args []string, output io.Writer, input io.Reader) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "SCRIPT", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "STEP":
		err = step(md, output, input)
	case "SCRIPT":
		err = scripted(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags shared by all modes
type common struct {
	prefs     *string
	log       *bool
	statsview *bool
	memviz    *string
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		prefs:     md.AddString("prefs", "", "preferences for this run. eg. \"hardware.trace::true; hardware.randomstate::false\""),
		log:       md.AddBool("log", false, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available())),
		memviz:    md.AddString("memviz", "", "write graphviz map of CPU to file when program ends"),
	}
}

// create machine according to the common flags
func (c *common) machine(output io.Writer) (*hardware.Machine, error) {
	if *c.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *c.statsview {
		statsview.Launch(output, "")
	}

	prefs.PushCommandLineStack(*c.prefs)
	m, err := hardware.NewMachine(nil)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "* unused preferences: %s\n", unused)
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (c *common) end(m *hardware.Machine) error {
	if *c.memviz == "" {
		return nil
	}
	return writeMemviz(*c.memviz, m)
}

// the program is either given as a hex string or as a filename
func loadProgram(md *modalflag.Modes, hex string) ([]uint8, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		if hex == "" {
			return nil, fmt.Errorf("program file or -hex required for %s mode", md)
		}
		return program.ParseHex(hex)
	case 1:
		if hex != "" {
			return nil, errors.New("specify -hex or a program file, not both")
		}
		return program.Load(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommon(md)
	hex := md.AddString("hex", "", "program as hex string. eg. \"a9 05 aa 00\"")
	rom := md.AddBool("rom", false, "also copy program into ROM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prg, err := loadProgram(md, *hex)
	if err != nil {
		return err
	}

	m, err := c.machine(output)
	if err != nil {
		return err
	}

	if *rom {
		if err := m.LoadROM(prg); err != nil {
			return err
		}
	}

	err = m.Run(prg)
	fmt.Fprint(output, m)
	if s := m.RAM.Summary(); s != "" {
		fmt.Fprint(output, s)
	}
	if err != nil {
		return err
	}

	return c.end(m)
}

func step(md *modalflag.Modes, output io.Writer, input io.Reader) error {
	md.NewMode()

	c := addCommon(md)
	hex := md.AddString("hex", "", "program as hex string. eg. \"a9 05 aa 00\"")
	rom := md.AddBool("rom", false, "also copy program into ROM")
	md.AdditionalHelp("press any key to step. press q to quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prg, err := loadProgram(md, *hex)
	if err != nil {
		return err
	}

	m, err := c.machine(output)
	if err != nil {
		return err
	}

	if *rom {
		if err := m.LoadROM(prg); err != nil {
			return err
		}
	}

	keys, err := newKeys(input, output)
	if err != nil {
		return err
	}
	defer keys.close()

	m.Load(prg)
	fmt.Fprintf(output, "%s\n", m.CPU)

	err = m.Continue(func(r execution.Result) (bool, error) {
		fmt.Fprintf(output, "%s\t%s\n", r, m.CPU)
		k, err := keys.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		return k != 'q' && k != 'Q', nil
	})
	if err != nil {
		return err
	}

	if m.Interpreter.State() == interpreter.Halted {
		fmt.Fprintf(output, "%s\n", m.Interpreter.LastResult)
	}

	return c.end(m)
}

func scripted(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommon(md)
	md.AdditionalHelp("the script file is a Lua program. see the script package for available functions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one script file required for %s mode", md)
	}

	m, err := c.machine(output)
	if err != nil {
		return err
	}

	scr := script.NewScript(m, output)
	defer scr.Close()

	if err := scr.RunFile(md.GetArg(0)); err != nil {
		return err
	}

	return c.end(m)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	hex := md.AddString("hex", "", "program as hex string. eg. \"a9 05 aa 00\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prg, err := loadProgram(md, *hex)
	if err != nil {
		return err
	}

	return disassembly.FromProgram(prg).Write(output)
}
