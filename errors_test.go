package periodic

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(Te *testing.T) {
	err := &Error{Kind: InvalidAtomicNumber, Number: 999}
	if err.Error() != "invalid atomic number 999" {
		Te.Errorf("unexpected message %q", err.Error())
	}
	err = &Error{Kind: InvalidAtomicSymbol, Symbol: "A"}
	if err.Error() != "invalid atomic symbol A" {
		Te.Errorf("unexpected message %q", err.Error())
	}
	err.Decorate("ReadSMILES")
	err.Decorate("")
	if err.Error() != "ReadSMILES: invalid atomic symbol A" {
		Te.Errorf("unexpected decorated message %q", err.Error())
	}
}

func TestErrorIs(Te *testing.T) {
	_, err := FromSymbol("Xx")
	wrapped := fmt.Errorf("parsing atom 3: %w", err)
	if !errors.Is(wrapped, ErrInvalidAtomicSymbol) {
		Te.Error("wrapped error should match ErrInvalidAtomicSymbol")
	}
	if errors.Is(wrapped, ErrInvalidAtomicNumber) {
		Te.Error("wrapped error should not match ErrInvalidAtomicNumber")
	}
	if InvalidIsotope.String() != "InvalidIsotope" {
		Te.Errorf("unexpected kind name %s", InvalidIsotope)
	}
}

func TestSentinelDecorate(Te *testing.T) {
	before := ErrUnsupported.Error()
	if deco := ErrUnsupported.Decorate("SomeCaller"); len(deco) != 0 {
		Te.Errorf("sentinel should not keep decorations, has %v", deco)
	}
	if ErrUnsupported.Error() != before {
		Te.Errorf("sentinel message changed from %q to %q", before, ErrUnsupported.Error())
	}
	_, err := U.AtomicWeight()
	if !errors.Is(err, ErrUnsupported) {
		Te.Errorf("expected Unsupported, got %v", err)
	}
}

func TestUnmarshalTextDecoration(Te *testing.T) {
	var e Element
	err := e.UnmarshalText([]byte("Zz"))
	var perr *Error
	if !errors.As(err, &perr) || perr.Symbol != "Zz" {
		Te.Fatalf("expected InvalidAtomicSymbol(Zz), got %v", err)
	}
	if err.Error() != "UnmarshalText: invalid atomic symbol Zz" {
		Te.Errorf("unexpected message %q", err.Error())
	}
}
