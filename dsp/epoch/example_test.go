package epoch_test

import (
	"fmt"

	"github.com/cwbudde/algo-psola/dsp/epoch"
	"github.com/cwbudde/algo-psola/internal/testutil"
)

func ExampleDetector_Detect() {
	det, err := epoch.NewDetector(48000)
	if err != nil {
		panic(err)
	}

	// 200 Hz pulse train: one excitation every 240 samples.
	sig := testutil.PulseTrain(240, 1.0, 4800)

	marks, err := det.Detect(sig)
	if err != nil {
		panic(err)
	}

	fmt.Println("first marks:", []int(marks[:3]))
	// Output: first marks: [0 240 480]
}
