package fibonacci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastKnownValues(t *testing.T) {
	want := map[int]string{
		-5:  "0",
		0:   "0",
		1:   "1",
		2:   "1",
		10:  "55",
		50:  "12586269025",
		93:  "12200160415121876738",
		186: "332825110087067562321196029789634457848",
		200: "280571172992510140037611932413038677189525",
	}
	for n, v := range want {
		assert.Equal(t, v, Fast(n).String(), "F(%d)", n)
	}
}

func TestRecursiveMatchesFast(t *testing.T) {
	for n := -1; n <= 25; n++ {
		assert.Equal(t, Fast(n).Uint64(), Recursive(n), "F(%d)", n)
	}
}
