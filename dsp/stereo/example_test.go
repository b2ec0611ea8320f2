package stereo_test

import (
	"fmt"

	"github.com/cwbudde/algo-audiotools/dsp/stereo"
)

func ExampleEqualPowerGains() {
	l, r := stereo.EqualPowerGains(0)
	fmt.Printf("%.3f %.3f\n", l, r)
	// Output: 0.707 0.707
}

func ExampleMonoPan() {
	l, r, err := stereo.MonoPan(0.5, 1.0)
	fmt.Println(l, r, err)

	_, _, err = stereo.MonoPan(1.5, 1.0)
	fmt.Println(err)
	// Output:
	// 0.25 0.75 <nil>
	// stereo: pan amount above 1
}
