/*
 * element.go, part of periodic.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package periodic

import "fmt"

// Element identifies a chemical element, or the wildcard Any.
// The underlying value is the atomic number.
type Element uint8

//The order matters: each constant equals its atomic number.
const (
	Any Element = iota
	H
	He
	Li
	Be
	B
	C
	N
	O
	F
	Ne
	Na
	Mg
	Al
	Si
	P
	S
	Cl
	Ar
	K
	Ca
	Sc
	Ti
	V
	Cr
	Mn
	Fe
	Co
	Ni
	Cu
	Zn
	Ga
	Ge
	As
	Se
	Br
	Kr
	Rb
	Sr
	Y
	Zr
	Nb
	Mo
	Tc
	Ru
	Rh
	Pd
	Ag
	Cd
	In
	Sn
	Sb
	Te
	I
	Xe
	Cs
	Ba
	La
	Ce
	Pr
	Nd
	Pm
	Sm
	Eu
	Gd
	Tb
	Dy
	Ho
	Er
	Tm
	Yb
	Lu
	Hf
	Ta
	W
	Re
	Os
	Ir
	Pt
	Au
	Hg
	Tl
	Pb
	Bi
	Po
	At
	Rn
	Fr
	Ra
	Ac
	Th
	Pa
	U
	Np
	Pu
	Am
	Cm
	Bk
	Cf
	Es
	Fm
	Md
	No
	Lr
	Rf
	Db
	Sg
	Bh
	Hs
	Mt
	Ds
	Rg
	Cn
	Nh
	Fl
	Mc
	Lv
	Ts
	Og
)

// NumElements is the number of Element values, the wildcard included.
const NumElements = int(Og) + 1

//lowercase symbol -> element. Built once from the element table.
var symbolIndex = func() map[string]Element {
	m := make(map[string]Element, NumElements)
	for i, rec := range elementTable {
		m[asciiLower(rec.symbol)] = Element(i)
	}
	return m
}()

// FromAtomicNumber returns the Element with atomic number n.
// 0 gives the wildcard Any. Numbers outside [0,118] return an error
// of kind InvalidAtomicNumber.
func FromAtomicNumber(n int) (Element, error) {
	if n < 0 || n >= NumElements {
		return Any, &Error{Kind: InvalidAtomicNumber, Number: n}
	}
	return Element(n), nil
}

// FromSymbol returns the Element for the atomic symbol s, which is matched
// regardless of letter case. "*" gives the wildcard. The error, of kind
// InvalidAtomicSymbol, keeps s as it was given.
func FromSymbol(s string) (Element, error) {
	e, ok := symbolIndex[asciiLower(s)]
	if !ok {
		return Any, &Error{Kind: InvalidAtomicSymbol, Symbol: s}
	}
	return e, nil
}

//asciiLower lowercases only the ASCII letters in s. Unicode case
//folding would turn look-alikes such as the Kelvin sign into "k".
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Elements returns all the Element values, Any first, in atomic number order.
func Elements() []Element {
	ret := make([]Element, NumElements)
	for i := range ret {
		ret[i] = Element(i)
	}
	return ret
}

// AtomicNumber returns the atomic number of the element, 0 for Any.
func (e Element) AtomicNumber() int {
	return int(e)
}

// Valid reports whether e is one of the NumElements defined values.
func (e Element) Valid() bool {
	return int(e) < NumElements
}

// Symbol returns the canonical atomic symbol, "*" for Any.
// It returns an empty string for an invalid value.
func (e Element) Symbol() string {
	if !e.Valid() {
		return ""
	}
	return elementTable[e].symbol
}

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", uint8(e))
	}
	return elementTable[e].symbol
}

// MarshalText implements encoding.TextMarshaler. Elements are written
// as their canonical symbol.
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, &Error{Kind: InvalidAtomicNumber, Number: int(e)}
	}
	return []byte(elementTable[e].symbol), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any
// symbol FromSymbol accepts.
func (e *Element) UnmarshalText(text []byte) error {
	el, err := FromSymbol(string(text))
	if err != nil {
		if err2, ok := err.(*Error); ok {
			err2.Decorate("UnmarshalText")
		}
		return err
	}
	*e = el
	return nil
}
