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
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// keys provides key presses for STEP mode
type keys interface {
	next() (byte, error)
	close()
}

// newKeys returns an implementation of keys suitable for input. if input is
// a terminal then key presses are read without waiting for the return key.
func newKeys(input io.Reader, output io.Writer) (keys, error) {
	if f, ok := input.(*os.File); ok && xterm.IsTerminal(int(f.Fd())) {
		return newTTYKeys(output)
	}
	return &lineKeys{r: bufio.NewReader(input)}, nil
}

type ttyKeys struct {
	t       *term.Term
	intChan chan os.Signal
}

func newTTYKeys(output io.Writer) (*ttyKeys, error) {
	t, err := term.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	if err := t.SetCbreak(); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("keys: %w", err)
	}

	k := &ttyKeys{
		t:       t,
		intChan: make(chan os.Signal, 1),
	}

	// cbreak mode still allows ctrl-c. the terminal must be restored before
	// the program exits
	signal.Notify(k.intChan, os.Interrupt)
	go func() {
		if _, ok := <-k.intChan; ok {
			_ = k.t.Restore()
			_ = k.t.Close()
			fmt.Fprintln(output, "\r")
			os.Exit(30)
		}
	}()

	return k, nil
}

func (k *ttyKeys) next() (byte, error) {
	b := make([]byte, 1)
	if _, err := k.t.Read(b); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (k *ttyKeys) close() {
	signal.Stop(k.intChan)
	close(k.intChan)
	_ = k.t.Restore()
	_ = k.t.Close()
}

// lineKeys reads one line of input for every key press. the key is the first
// character of the line
type lineKeys struct {
	r *bufio.Reader
}

func (k *lineKeys) next() (byte, error) {
	s, err := k.r.ReadString('\n')
	if s == "" && err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return '\n', nil
	}
	return s[0], nil
}

func (k *lineKeys) close() {
}
