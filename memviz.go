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
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/sixtyfive/hardware"
)

// machineState is the information written by writeMemviz()
type machineState struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	Status string
	Bus    []busMapping
}

type busMapping struct {
	Origin uint16
	Memtop uint16
	Device string
}

// writeMemviz writes a graphviz description of the machine to the named file.
func writeMemviz(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	st := &machineState{
		PC:     m.CPU.PC.Address(),
		A:      m.CPU.A.Value(),
		X:      m.CPU.X.Value(),
		Y:      m.CPU.Y.Value(),
		Status: m.CPU.Status.String(),
	}
	for _, mp := range m.Bus.Mappings() {
		st.Bus = append(st.Bus, busMapping{
			Origin: mp.Range.Origin,
			Memtop: mp.Range.Memtop,
			Device: mp.Device.Label(),
		})
	}

	memviz.Map(f, st)

	return nil
}
