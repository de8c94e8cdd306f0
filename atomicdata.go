/*
 * atomicdata.go, part of periodic.
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

//elementData holds everything the package knows about one element.
//A zero weight means the element has no tabulated weight (Any is
//handled separately), a zero valenceElectrons means the element
//is outside the organic subset.
type elementData struct {
	symbol           string
	weight           float64
	isotopes         map[int]float64 //mass number -> isotopic mass
	valenceElectrons int
}

//elementTable is indexed by atomic number. All conversions and
//property lookups are derived from it.
//Standard weights are the midpoints of the IUPAC intervals where the
//weight is given as an interval. Isotopic masses are rounded to 6 decimals.
//Note that just the first few rows and the common halogens have weights.
var elementTable = [...]elementData{
	Any: {symbol: "*"},
	H: {symbol: "H", weight: 1.007975, valenceElectrons: 1,
		isotopes: map[int]float64{1: 1.007825, 2: 2.014102, 3: 3.016049}},
	He: {symbol: "He", weight: 4.002602,
		isotopes: map[int]float64{3: 3.016029, 4: 4.002603}},
	Li: {symbol: "Li", weight: 6.9675,
		isotopes: map[int]float64{6: 6.015123, 7: 7.016003}},
	Be: {symbol: "Be", weight: 9.0121831,
		isotopes: map[int]float64{9: 9.012183}},
	B: {symbol: "B", weight: 10.8135, valenceElectrons: 3,
		isotopes: map[int]float64{10: 10.012937, 11: 11.009305}},
	C: {symbol: "C", weight: 12.0106, valenceElectrons: 4,
		isotopes: map[int]float64{12: 12.000000, 13: 13.003355, 14: 14.003242}},
	N: {symbol: "N", weight: 14.006855, valenceElectrons: 5,
		isotopes: map[int]float64{14: 14.003074, 15: 15.000109}},
	O: {symbol: "O", weight: 15.9994, valenceElectrons: 6,
		isotopes: map[int]float64{16: 15.994915, 17: 16.999132, 18: 17.999160}},
	F: {symbol: "F", weight: 18.998403163, valenceElectrons: 7,
		isotopes: map[int]float64{19: 18.998403}},
	Ne: {symbol: "Ne", weight: 20.1797,
		isotopes: map[int]float64{20: 19.992440, 21: 20.993847, 22: 21.991385}},
	Na: {symbol: "Na", weight: 22.98976928,
		isotopes: map[int]float64{23: 22.989769}},
	Mg: {symbol: "Mg", weight: 24.3055,
		isotopes: map[int]float64{24: 23.985042, 25: 24.985837, 26: 25.982593}},
	Al: {symbol: "Al", weight: 26.9815384,
		isotopes: map[int]float64{27: 26.981538}},
	Si: {symbol: "Si", weight: 28.085,
		isotopes: map[int]float64{28: 27.976927, 29: 28.976495, 30: 29.973770}},
	P: {symbol: "P", weight: 30.973761998, valenceElectrons: 5,
		isotopes: map[int]float64{31: 30.973762}},
	S: {symbol: "S", weight: 32.0675, valenceElectrons: 6,
		isotopes: map[int]float64{32: 31.972071, 33: 32.971459, 34: 33.967867, 36: 35.967081}},
	Cl: {symbol: "Cl", weight: 35.4515, valenceElectrons: 7,
		isotopes: map[int]float64{35: 34.968853, 37: 36.965903}},
	Ar: {symbol: "Ar", weight: 39.8775,
		isotopes: map[int]float64{36: 35.967545, 38: 37.962732, 40: 39.962383}},
	K:  {symbol: "K"},
	Ca: {symbol: "Ca"},
	Sc: {symbol: "Sc"},
	Ti: {symbol: "Ti"},
	V:  {symbol: "V"},
	Cr: {symbol: "Cr"},
	Mn: {symbol: "Mn"},
	Fe: {symbol: "Fe"},
	Co: {symbol: "Co"},
	Ni: {symbol: "Ni"},
	Cu: {symbol: "Cu"},
	Zn: {symbol: "Zn"},
	Ga: {symbol: "Ga"},
	Ge: {symbol: "Ge"},
	As: {symbol: "As"},
	Se: {symbol: "Se"},
	Br: {symbol: "Br", weight: 79.904, valenceElectrons: 7,
		isotopes: map[int]float64{79: 78.918338, 81: 80.916290}},
	Kr: {symbol: "Kr"},
	Rb: {symbol: "Rb"},
	Sr: {symbol: "Sr"},
	Y:  {symbol: "Y"},
	Zr: {symbol: "Zr"},
	Nb: {symbol: "Nb"},
	Mo: {symbol: "Mo"},
	Tc: {symbol: "Tc"},
	Ru: {symbol: "Ru"},
	Rh: {symbol: "Rh"},
	Pd: {symbol: "Pd"},
	Ag: {symbol: "Ag"},
	Cd: {symbol: "Cd"},
	In: {symbol: "In"},
	Sn: {symbol: "Sn"},
	Sb: {symbol: "Sb"},
	Te: {symbol: "Te"},
	I: {symbol: "I", weight: 126.90447, valenceElectrons: 7,
		isotopes: map[int]float64{127: 126.904472}},
	Xe: {symbol: "Xe"},
	Cs: {symbol: "Cs"},
	Ba: {symbol: "Ba"},
	La: {symbol: "La"},
	Ce: {symbol: "Ce"},
	Pr: {symbol: "Pr"},
	Nd: {symbol: "Nd"},
	Pm: {symbol: "Pm"},
	Sm: {symbol: "Sm"},
	Eu: {symbol: "Eu"},
	Gd: {symbol: "Gd"},
	Tb: {symbol: "Tb"},
	Dy: {symbol: "Dy"},
	Ho: {symbol: "Ho"},
	Er: {symbol: "Er"},
	Tm: {symbol: "Tm"},
	Yb: {symbol: "Yb"},
	Lu: {symbol: "Lu"},
	Hf: {symbol: "Hf"},
	Ta: {symbol: "Ta"},
	W:  {symbol: "W"},
	Re: {symbol: "Re"},
	Os: {symbol: "Os"},
	Ir: {symbol: "Ir"},
	Pt: {symbol: "Pt"},
	Au: {symbol: "Au"},
	Hg: {symbol: "Hg"},
	Tl: {symbol: "Tl"},
	Pb: {symbol: "Pb"},
	Bi: {symbol: "Bi"},
	Po: {symbol: "Po"},
	At: {symbol: "At"},
	Rn: {symbol: "Rn"},
	Fr: {symbol: "Fr"},
	Ra: {symbol: "Ra"},
	Ac: {symbol: "Ac"},
	Th: {symbol: "Th"},
	Pa: {symbol: "Pa"},
	U:  {symbol: "U"},
	Np: {symbol: "Np"},
	Pu: {symbol: "Pu"},
	Am: {symbol: "Am"},
	Cm: {symbol: "Cm"},
	Bk: {symbol: "Bk"},
	Cf: {symbol: "Cf"},
	Es: {symbol: "Es"},
	Fm: {symbol: "Fm"},
	Md: {symbol: "Md"},
	No: {symbol: "No"},
	Lr: {symbol: "Lr"},
	Rf: {symbol: "Rf"},
	Db: {symbol: "Db"},
	Sg: {symbol: "Sg"},
	Bh: {symbol: "Bh"},
	Hs: {symbol: "Hs"},
	Mt: {symbol: "Mt"},
	Ds: {symbol: "Ds"},
	Rg: {symbol: "Rg"},
	Cn: {symbol: "Cn"},
	Nh: {symbol: "Nh"},
	Fl: {symbol: "Fl"},
	Mc: {symbol: "Mc"},
	Lv: {symbol: "Lv"},
	Ts: {symbol: "Ts"},
	Og: {symbol: "Og"},
}

//valenceTable maps a number of valence electrons to the usual
//covalent valence of a main-group atom: n up to 4, 8-n above.
var valenceTable = [...]int{0, 1, 2, 3, 4, 3, 2, 1, 0}
