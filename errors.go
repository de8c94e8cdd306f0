/*
 * errors.go, part of periodic.
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
	"strings"
)

// ErrorKind tells apart the different input problems an Error can report.
type ErrorKind int

const (
	InvalidAtomicNumber ErrorKind = iota + 1
	InvalidAtomicSymbol
	InvalidIsotope
	InvalidFormalCharge
	Unsupported //the element is not (yet) in the relevant table
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidAtomicNumber:
		return "InvalidAtomicNumber"
	case InvalidAtomicSymbol:
		return "InvalidAtomicSymbol"
	case InvalidIsotope:
		return "InvalidIsotope"
	case InvalidFormalCharge:
		return "InvalidFormalCharge"
	case Unsupported:
		return "Unsupported"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for use with errors.Is. Any *Error of the same Kind matches.
// Decorating a sentinel does nothing.
var (
	ErrInvalidAtomicNumber = &Error{Kind: InvalidAtomicNumber, sentinel: true}
	ErrInvalidAtomicSymbol = &Error{Kind: InvalidAtomicSymbol, sentinel: true}
	ErrInvalidIsotope      = &Error{Kind: InvalidIsotope, sentinel: true}
	ErrInvalidFormalCharge = &Error{Kind: InvalidFormalCharge, sentinel: true}
	ErrUnsupported         = &Error{Kind: Unsupported, sentinel: true}
)

// Error is the error type returned by all functions in this package.
// Only the fields relevant to the Kind are set. All of them are
// validation problems with the input, never internal faults.
type Error struct {
	Kind      ErrorKind
	Number    int    //the atomic number, for InvalidAtomicNumber
	Symbol    string //the offending symbol, or the symbol of the element involved
	Isotope   int    //mass number, for InvalidIsotope
	Charge    int    //formal charge, for InvalidFormalCharge
	Operation string //for Unsupported, what was attempted
	deco      []string
	sentinel  bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	var msg string
	switch err.Kind {
	case InvalidAtomicNumber:
		msg = fmt.Sprintf("invalid atomic number %d", err.Number)
	case InvalidAtomicSymbol:
		msg = fmt.Sprintf("invalid atomic symbol %s", err.Symbol)
	case InvalidIsotope:
		msg = fmt.Sprintf("invalid isotope %d for %s", err.Isotope, err.Symbol)
	case InvalidFormalCharge:
		msg = fmt.Sprintf("invalid formal charge %d for %s", err.Charge, err.Symbol)
	case Unsupported:
		msg = fmt.Sprintf("%s not supported for %s", err.Operation, err.Symbol)
	default:
		msg = "unknown periodic error"
	}
	if len(err.deco) == 0 {
		return msg
	}
	return strings.Join(err.deco, ": ") + ": " + msg
}

// Decorate adds dec to the decoration slice of the error, and returns the
// resulting slice. The slice is meant to contain the functions in the
// calling stack, outermost last, plus any relevant info in the form
// "FunctionName: Extra info". An empty dec just returns the current slice,
// and so does any dec given to one of the package sentinels.
func (err *Error) Decorate(dec string) []string {
	if dec == "" || err.sentinel {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Is reports whether target is an *Error of the same Kind, so the
// package sentinels can be used with errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}
