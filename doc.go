/*
 * doc.go, part of periodic.
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

/*Package periodic is a small, static reference of the chemical elements, meant
as a building block for programs that read chemical notations.

	**Capabilities**

    An Element type with a constant for each of the 118 elements, plus the
	wildcard Any (atomic symbol "*", atomic number 0).

    Conversions between elements, atomic numbers and atomic symbols. Symbols
	are parsed regardless of letter case ("na", "NA" and "Na" are all sodium).

    Elements are serialized as their symbols by any encoder that uses
	encoding.TextMarshaler (JSON, YAML, etc.).

    Standard atomic weights and isotopic masses, for the first 18 elements,
	Br and I.

    Valence electrons and covalent valence for the "organic subset"
	(H, B, C, N, O, F, P, S, Cl, Br, I) with a given formal charge.

    Masses and total mass for lists of elements.

Lookups on elements that are not in the relevant table return an Error of
kind Unsupported, rather than a guessed value. The wildcard Any weighs 0,
has no isotopes, and is Unsupported for valence queries.

All the data is read-only and the package has no state, so everything
can be used concurrently.
*/
package periodic
