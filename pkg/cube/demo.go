package cube

import "math"

// Demo builds a deterministic synthetic cube for offline viewing and tests:
// horizontal reflectors with a gentle structural dip, signed amplitudes
// centered on zero. Inline numbering starts at 100, crossline at 200, and
// the sample axis runs in 4 ms steps.
func Demo(ni, nx, ns int) *Volume {
	inline := make([]float64, ni)
	for i := range inline {
		inline[i] = 100 + float64(i)
	}
	xline := make([]float64, nx)
	for x := range xline {
		xline[x] = 200 + float64(x)
	}
	sample := make([]float64, ns)
	for s := range sample {
		sample[s] = 4 * float64(s)
	}

	data := make([]float64, ni*nx*ns)
	idx := 0
	for i := 0; i < ni; i++ {
		for x := 0; x < nx; x++ {
			dip := 0.08*float64(i) + 0.05*float64(x)
			for s := 0; s < ns; s++ {
				data[idx] = math.Sin(0.6*float64(s) + dip)
				idx++
			}
		}
	}

	v, err := New(data, inline, xline, sample)
	if err != nil {
		// Dimensions are constructed consistently above.
		panic(err)
	}
	v.SetGeometry(ComputeGeometry(
		&CornerPoint{X: 0, Y: 0},
		&CornerPoint{X: 700, Y: 700},
		&CornerPoint{X: 700, Y: -700},
	))
	return v
}
