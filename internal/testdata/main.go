package testdata

import "time"

// Raw is a small beats fixture in the on-disk format.
const Raw = `# test fixture, half-second beats
0.0
0.5
1.0
1.5
2.0
`

func Beats() []time.Duration {
	return []time.Duration{
		0,
		500 * time.Millisecond,
		1000 * time.Millisecond,
		1500 * time.Millisecond,
		2000 * time.Millisecond,
	}
}
