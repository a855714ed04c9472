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

package pia

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/curated"
)

// Side of the PIA.
type Side int

// List of valid Side values.
const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Line is one of the two control lines of a side.
type Line int

// List of valid Line values.
const (
	C1 Line = iota
	C2
)

// Register selects one of the two registers of a side.
type Register int

// List of valid Register values.
const (
	DataRegister    Register = 0
	ControlRegister Register = 1
)

// Observer implementations receive the new output value of a side whenever
// it changes.
type Observer interface {
	OutputChanged(side Side, value uint8)
}

// ControlObserver implementations receive the new level of the C2 line of a
// side whenever it changes.
type ControlObserver interface {
	ControlChanged(side Side, level bool)
}

// MaxObservers is the maximum number of Observers that can be registered
// with a single PIA.
const MaxObservers = 8

// Sentinal error returned by AddObserver() when there is no room for another
// observer.
const ObserversFull = "pia: no room for another observer on %s"

type observer struct {
	side Side
	o    Observer
}

// PIA implements the MC6821.
type PIA struct {
	label string

	sides [2]side

	// observers are called in the order they were added
	observers    [MaxObservers]observer
	numObservers int

	control [2]ControlObserver
}

// NewPIA is the preferred method of initialisation for the PIA type.
func NewPIA(label string) *PIA {
	return &PIA{
		label: label,
	}
}

// Label returns the name the PIA was created with.
func (p *PIA) Label() string {
	return p.label
}

func (p *PIA) String() string {
	return fmt.Sprintf("%s: A[%s] B[%s]", p.label, &p.sides[SideA], &p.sides[SideB])
}

// Reset all registers to zero. Observers remain registered.
func (p *PIA) Reset() {
	for i := range p.sides {
		p.sides[i] = side{}
	}
}

// AddObserver registers an Observer for the specified side.
func (p *PIA) AddObserver(s Side, o Observer) error {
	if p.numObservers >= MaxObservers {
		return curated.Errorf(ObserversFull, p.label)
	}
	p.observers[p.numObservers] = observer{side: s, o: o}
	p.numObservers++
	return nil
}

// SetControlObserver sets the ControlObserver for the specified side. There
// can be only one per side. A nil value removes the observer.
func (p *PIA) SetControlObserver(s Side, o ControlObserver) {
	p.control[s] = o
}

// ReadRegister returns the value of the register on the specified side.
// Reading the data register acknowledges any interrupt on that side.
func (p *PIA) ReadRegister(s Side, reg Register) uint8 {
	ps := &p.sides[s]

	if reg == ControlRegister {
		return ps.cr
	}

	if ps.cr&crDataSelect == crDataSelect {
		ps.cr &^= crIRQ1 | crIRQ2
		return ps.data
	}

	return ps.ddr
}

// WriteRegister sets the value of the register on the specified side.
// Observers are notified if the output value or the C2 output level change.
func (p *PIA) WriteRegister(s Side, reg Register, value uint8) {
	ps := &p.sides[s]

	prevOutput := ps.output()
	prevC2 := ps.c2Output()

	if reg == ControlRegister {
		// interrupt flags are read-only
		ps.cr = (ps.cr & (crIRQ1 | crIRQ2)) | (value &^ (crIRQ1 | crIRQ2))
	} else if ps.cr&crDataSelect == crDataSelect {
		ps.data = (ps.data &^ ps.ddr) | (value & ps.ddr)
	} else {
		ps.ddr = value
	}

	if out := ps.output(); out != prevOutput {
		for i := 0; i < p.numObservers; i++ {
			if p.observers[i].side == s {
				p.observers[i].o.OutputChanged(s, out)
			}
		}
	}

	if c2 := ps.c2Output(); c2 != prevC2 && p.control[s] != nil {
		p.control[s].ControlChanged(s, c2)
	}
}

// InjectInput sets the input bits of the data register on the specified side.
// Only bits that are in the mask and that are configured as inputs are
// affected.
func (p *PIA) InjectInput(s Side, value uint8, mask uint8) {
	ps := &p.sides[s]
	mask &^= ps.ddr
	ps.data = (ps.data &^ mask) | (value & mask)
}

// InjectEdge sets the level of the C1 or C2 line on the specified side. If the
// change in level matches the transition configured in the control register
// then the interrupt flag for that line is set.
func (p *PIA) InjectEdge(s Side, line Line, level bool) {
	ps := &p.sides[s]

	switch line {
	case C1:
		if ps.transition(ps.c1, level, ps.cr&crC1Rising == crC1Rising) {
			ps.cr |= crIRQ1
		}
		ps.c1 = level
	case C2:
		// c2 is an output and does not respond to external levels
		if ps.cr&crC2Output == crC2Output {
			return
		}
		if ps.transition(ps.c2, level, ps.cr&crC2Rising == crC2Rising) {
			ps.cr |= crIRQ2
		}
		ps.c2 = level
	}
}

// InterruptPending returns true if an enabled interrupt flag is set on either
// side.
func (p *PIA) InterruptPending() bool {
	return p.sides[SideA].interrupt() || p.sides[SideB].interrupt()
}

// Output returns the current output value of the specified side.
func (p *PIA) Output(s Side) uint8 {
	return p.sides[s].output()
}

// ControlLevel returns the level of the C2 line of the specified side, as
// driven by the PIA.
func (p *PIA) ControlLevel(s Side) bool {
	return p.sides[s].c2Output()
}

// Read implements the bus.ReadFunc signature. Address bit 1 selects the
// side and address bit 0 selects the register.
func (p *PIA) Read(offset uint16) uint8 {
	return p.ReadRegister(Side((offset&0x02)>>1), Register(offset&0x01))
}

// Write implements the bus.WriteFunc signature. See Read() for address
// decoding.
func (p *PIA) Write(offset uint16, data uint8) {
	p.WriteRegister(Side((offset&0x02)>>1), Register(offset&0x01), data)
}
