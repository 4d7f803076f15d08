/*
DESCRIPTION
  chartref.go holds the immutable, process-wide reference table of the 24
  standard ColorChecker patch values in CIE L*a*b*, in the canonical
  row-major sampling order (6 columns x 4 rows, dark-skin top-left through
  darkest-neutral bottom-right).

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Package chartref provides the standard 24-patch ColorChecker reference
// values used as the ground truth for ΔE2000 scoring.
package chartref

// LabSample is a color in CIE L*a*b* space. L is in [0,100]; a and b are
// roughly in [-128,127].
type LabSample struct {
	L, A, B float64
}

// NumPatches is the number of patches in a standard ColorChecker chart.
const NumPatches = 24

// Columns and Rows describe the sampling grid layout of the chart.
const (
	Columns = 6
	Rows    = 4
)

// Table is the immutable reference table, in row-major sampling order
// (row increasing outermost, as PatchAnalyzer samples it). It is safe for
// concurrent read access for the lifetime of the process.
var Table = [NumPatches]LabSample{
	{37.986, 13.555, 14.059},
	{65.711, 18.130, 17.810},
	{49.927, -4.880, -21.925},
	{43.139, -13.095, 21.905},
	{55.112, 8.844, -25.399},
	{70.719, -33.395, -0.199},
	{62.661, 36.067, 57.096},
	{40.020, 10.410, -45.964},
	{51.124, 48.239, 16.248},
	{30.325, 22.976, -21.587},
	{72.532, -23.709, 57.255},
	{71.941, 19.363, 67.857},
	{28.778, 14.179, -50.297},
	{55.261, -38.342, 31.370},
	{42.101, 53.378, 28.190},
	{81.733, 4.039, 79.819},
	{51.935, 49.986, -14.574},
	{51.038, -28.631, -28.638},
	{96.539, -0.425, 1.186},
	{81.257, -0.638, -0.335},
	{66.766, -0.734, -0.504},
	{50.867, -0.153, -0.270},
	{35.656, -0.421, -1.231},
	{20.461, -0.079, -0.973},
}

// At returns the reference LabSample for patch index i in row-major
// sampling order (row = i / Columns, column = i % Columns).
func At(i int) LabSample { return Table[i] }
