/*
 * properties.go, part of periodic.
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

import "sort"

//data returns the table entry for e, or an InvalidAtomicNumber
//error if e is out of range (which can only happen via a conversion
//from an integer).
func (e Element) data() (*elementData, error) {
	if !e.Valid() {
		return nil, &Error{Kind: InvalidAtomicNumber, Number: int(e)}
	}
	return &elementTable[e], nil
}

// AtomicWeight returns the standard atomic weight of the element or,
// if an isotope mass number is given, the mass of that isotope.
// Only the first isotope given is considered.
// Any weighs 0 by convention.
func (e Element) AtomicWeight(isotope ...int) (float64, error) {
	if len(isotope) > 0 {
		return e.IsotopeMass(isotope[0])
	}
	return e.StandardWeight()
}

// StandardWeight returns the standard atomic weight of the element.
// It is 0 for Any. Elements without tabulated data give an
// Unsupported error.
func (e Element) StandardWeight() (float64, error) {
	d, err := e.data()
	if err != nil {
		return 0, err
	}
	if e == Any {
		return 0, nil
	}
	if d.weight == 0 {
		return 0, &Error{Kind: Unsupported, Symbol: d.symbol, Operation: "atomic weight"}
	}
	return d.weight, nil
}

// IsotopeMass returns the mass of the isotope of e with the given mass number.
func (e Element) IsotopeMass(massNumber int) (float64, error) {
	d, err := e.data()
	if err != nil {
		return 0, err
	}
	if e != Any && d.isotopes == nil {
		return 0, &Error{Kind: Unsupported, Symbol: d.symbol, Operation: "isotope mass"}
	}
	m, ok := d.isotopes[massNumber]
	if !ok {
		return 0, &Error{Kind: InvalidIsotope, Symbol: d.symbol, Isotope: massNumber}
	}
	return m, nil
}

// Isotopes returns the mass numbers of the tabulated isotopes of e, in
// ascending order. Any has no isotopes.
func (e Element) Isotopes() ([]int, error) {
	d, err := e.data()
	if err != nil {
		return nil, err
	}
	if e != Any && d.isotopes == nil {
		return nil, &Error{Kind: Unsupported, Symbol: d.symbol, Operation: "isotope mass"}
	}
	ret := make([]int, 0, len(d.isotopes))
	for k := range d.isotopes {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret, nil
}

// NValenceElectrons returns the number of valence electrons of e
// carrying the given formal charge. It is defined for H, B, C, N, O, F,
// P, S, Cl, Br and I. A result outside [0,8] gives an
// InvalidFormalCharge error.
func (e Element) NValenceElectrons(formalCharge int) (int, error) {
	d, err := e.data()
	if err != nil {
		return 0, err
	}
	if d.valenceElectrons == 0 {
		return 0, &Error{Kind: Unsupported, Symbol: d.symbol, Operation: "valence electrons"}
	}
	n := d.valenceElectrons - formalCharge
	if n < 0 || n >= len(valenceTable) {
		return 0, &Error{Kind: InvalidFormalCharge, Symbol: d.symbol, Charge: formalCharge}
	}
	return n, nil
}

// Valence returns the usual covalent valence of e with the given formal
// charge, i.e. the number of valence electrons n if n<=4, 8-n otherwise.
// Errors from NValenceElectrons are returned unchanged.
func (e Element) Valence(formalCharge int) (int, error) {
	n, err := e.NValenceElectrons(formalCharge)
	if err != nil {
		return 0, err
	}
	return valenceTable[n], nil
}
