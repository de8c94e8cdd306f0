/*
 * masses.go, part of periodic.
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

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a slice with the masses of all atoms
	Masses() ([]float64, error)
}

// Composition is a list of atoms given only by their elements.
type Composition []Element

// Masses returns the standard weight of each element in C.
func (C Composition) Masses() ([]float64, error) {
	return Masses(C)
}

// Masses returns a slice with the standard weight of each element
// in elems. The first element without a weight stops the process,
// and the error is decorated with its index.
func Masses(elems []Element) ([]float64, error) {
	ret := make([]float64, len(elems))
	for i, e := range elems {
		w, err := e.StandardWeight()
		if err != nil {
			if err2, ok := err.(*Error); ok {
				err2.Decorate(fmt.Sprintf("Masses: element %d", i))
			}
			return nil, err
		}
		ret[i] = w
	}
	return ret, nil
}

// TotalMass returns the sum of the masses given by m.
func TotalMass(m Masser) (float64, error) {
	masses, err := m.Masses()
	if err != nil {
		return 0, err
	}
	return floats.Sum(masses), nil
}
