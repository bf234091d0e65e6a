// Package eulumdat implements the line-oriented EULUMDAT-style codec for
// the single-distribution photometric document.
//
// What:
//
//   - Parse reads the fixed line layout into a photometry.Document.
//   - Write serializes a Document back to text, deterministically.
//
// Layout (one field per line unless noted):
//
//	 1 company / identification
//	 2 type indicator (1 point-source-symmetric, 2 linear, 3 other)
//	 3 symmetry code (0 none … 4 both planes)
//	 4 Mc  — C-plane count of the full grid
//	 5 Dc  — C-plane spacing, 0 for non-uniform
//	 6 Ng  — gamma-angle count
//	 7 Dg  — gamma spacing, 0 for non-uniform
//	 8 measurement report number
//	 9 luminaire name
//	10 luminaire number
//	11 file name
//	12 date / operator
//	13–15 length (or diameter), width (0 = circular), height  [mm]
//	16–21 luminous area: length, width, heights at C0/C90/C180/C270  [mm]
//	22 downward flux fraction  [%]
//	23 light output ratio      [%]
//	24 intensity conversion factor
//	25 measurement tilt        [°]
//	26 number of lamp sets, then per set six lines:
//	   lamp count, type, total flux [lm], color temperature, color
//	   rendering, wattage [W]
//	   one line of ten direct ratios (space-separated)
//	   one line of stored C angles (space-separated, symmetry-reduced)
//	   one line of gamma angles (space-separated)
//	   one intensity line per stored C plane (space-separated, cd/klm)
//
// Round trip: Parse(Write(d)) reproduces every numeric field of d to
// format precision. Write re-derives Mc/Dc and Ng/Dg from the angle
// arrays whenever the spacing is uniform, so hand-built documents with
// empty grid descriptions still serialize correctly.
//
// Errors: structurally invalid input never parses into a defaulted
// document. Failures are reported as *ParseError carrying the 1-based
// line number and wrapping a category sentinel (ErrTruncated, ErrSyntax,
// or a photometry shape error).
package eulumdat
