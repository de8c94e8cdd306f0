package periodic

import (
	"errors"
	"testing"
)

func TestAtomicWeight(Te *testing.T) {
	w, err := H.AtomicWeight()
	if err != nil {
		Te.Fatal(err)
	}
	if w != 1.007975 {
		Te.Errorf("H weight: %f", w)
	}
	w, err = C.AtomicWeight(13)
	if err != nil {
		Te.Fatal(err)
	}
	if w != 13.003355 {
		Te.Errorf("13C mass: %f", w)
	}
	_, err = C.AtomicWeight(99)
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != InvalidIsotope || perr.Symbol != "C" || perr.Isotope != 99 {
		Te.Errorf("expected InvalidIsotope(C, 99), got %v", err)
	}
	if err.Error() != "invalid isotope 99 for C" {
		Te.Errorf("unexpected message %q", err.Error())
	}
	w, err = Any.AtomicWeight()
	if err != nil || w != 0 {
		Te.Errorf("wildcard weight: %f %v", w, err)
	}
	if _, err = Any.AtomicWeight(12); !errors.Is(err, ErrInvalidIsotope) {
		Te.Errorf("wildcard isotope: expected InvalidIsotope, got %v", err)
	}
}

//Every element with a standard weight has isotopes and the other way around,
//the lightest isotope is lighter than the standard weight + 1, and so on.
func TestWeightTable(Te *testing.T) {
	supported := []Element{H, He, Li, Be, B, C, N, O, F, Ne, Na, Mg, Al, Si, P, S, Cl, Ar, Br, I}
	sup := make(map[Element]bool)
	for _, e := range supported {
		sup[e] = true
	}
	for _, e := range Elements()[1:] {
		w, err := e.StandardWeight()
		isos, err2 := e.Isotopes()
		if !sup[e] {
			if !errors.Is(err, ErrUnsupported) || !errors.Is(err2, ErrUnsupported) {
				Te.Errorf("%s should be unsupported, got %v and %v", e, err, err2)
			}
			if _, err = e.AtomicWeight(1); !errors.Is(err, ErrUnsupported) {
				Te.Errorf("%s isotope should be unsupported, got %v", e, err)
			}
			continue
		}
		if err != nil || err2 != nil {
			Te.Errorf("%s: %v %v", e, err, err2)
			continue
		}
		if len(isos) == 0 {
			Te.Errorf("%s has no isotopes", e)
		}
		prev := 0
		for _, iso := range isos {
			if iso <= prev {
				Te.Errorf("%s isotopes not sorted: %v", e, isos)
			}
			prev = iso
			m, err := e.IsotopeMass(iso)
			if err != nil {
				Te.Error(err)
			}
			//isotopic masses are close to the mass number.
			if d := m - float64(iso); d > 0.1 || d < -0.1 {
				Te.Errorf("%s-%d has mass %f", e, iso, m)
			}
		}
		if w < float64(isos[0])-0.1 || w > float64(isos[len(isos)-1])+0.1 {
			Te.Errorf("%s standard weight %f outside its isotopes %v", e, w, isos)
		}
	}
	isos, err := Any.Isotopes()
	if err != nil || len(isos) != 0 {
		Te.Errorf("wildcard isotopes: %v %v", isos, err)
	}
}

func TestUnsupported(Te *testing.T) {
	_, err := U.AtomicWeight()
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != Unsupported || perr.Symbol != "U" {
		Te.Fatalf("expected Unsupported for U, got %v", err)
	}
	if err.Error() != "atomic weight not supported for U" {
		Te.Errorf("unexpected message %q", err.Error())
	}
	for _, e := range []Element{Any, He, Na, Fe, Se} {
		if _, err := e.NValenceElectrons(0); !errors.Is(err, ErrUnsupported) {
			Te.Errorf("%s valence electrons: expected Unsupported, got %v", e, err)
		}
		if _, err := e.Valence(0); !errors.Is(err, ErrUnsupported) {
			Te.Errorf("%s valence: expected Unsupported, got %v", e, err)
		}
	}
}

func TestValenceElectrons(Te *testing.T) {
	cases := []struct {
		e      Element
		charge int
		n      int
	}{
		{C, 0, 4},
		{C, -1, 5},
		{C, 1, 3},
		{O, -2, 8},
		{O, 0, 6},
		{H, 0, 1},
		{H, 1, 0},
		{N, 1, 4},
		{B, 0, 3},
		{P, 0, 5},
		{S, 0, 6},
		{Cl, 0, 7},
		{Br, -1, 8},
		{I, 0, 7},
	}
	for _, c := range cases {
		n, err := c.e.NValenceElectrons(c.charge)
		if err != nil {
			Te.Errorf("%s %d: %v", c.e, c.charge, err)
			continue
		}
		if n != c.n {
			Te.Errorf("%s with charge %d: expected %d valence electrons, got %d", c.e, c.charge, c.n, n)
		}
	}
	_, err := F.NValenceElectrons(-2)
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != InvalidFormalCharge || perr.Symbol != "F" || perr.Charge != -2 {
		Te.Errorf("expected InvalidFormalCharge(F, -2), got %v", err)
	}
	if err.Error() != "invalid formal charge -2 for F" {
		Te.Errorf("unexpected message %q", err.Error())
	}
	if _, err := H.NValenceElectrons(2); !errors.Is(err, ErrInvalidFormalCharge) {
		Te.Errorf("H+2: expected InvalidFormalCharge, got %v", err)
	}
}

func TestValence(Te *testing.T) {
	cases := []struct {
		e      Element
		charge int
		v      int
	}{
		{C, 0, 4},
		{S, 0, 2},
		{N, 0, 3},
		{N, 1, 4},
		{O, 0, 2},
		{O, -1, 1},
		{O, -2, 0},
		{F, 0, 1},
		{B, 0, 3},
		{H, 0, 1},
		{H, 1, 0},
		{C, -1, 3},
		{B, 1, 2},
		{N, -1, 2},
	}
	for _, c := range cases {
		v, err := c.e.Valence(c.charge)
		if err != nil {
			Te.Errorf("%s %d: %v", c.e, c.charge, err)
			continue
		}
		if v != c.v {
			Te.Errorf("%s with charge %d: expected valence %d, got %d", c.e, c.charge, c.v, v)
		}
	}
	_, err := F.Valence(-2)
	_, err2 := F.NValenceElectrons(-2)
	if err == nil || err.Error() != err2.Error() {
		Te.Errorf("Valence should pass the NValenceElectrons error through, got %v", err)
	}
}
