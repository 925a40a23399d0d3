package psola_test

import (
	"fmt"

	"github.com/cwbudde/algo-psola/dsp/epoch"
	"github.com/cwbudde/algo-psola/dsp/psola"
	"github.com/cwbudde/algo-psola/internal/testutil"
)

func ExampleEngine_ShiftPitch() {
	engine, err := psola.NewEngine(48000)
	if err != nil {
		panic(err)
	}

	// Half a second of a 200 Hz voiced excitation, shifted up a major third.
	in := testutil.PulseTrain(240, 0.8, 24000)

	out, err := engine.ShiftPitch(in, 1.25)
	if err != nil {
		panic(err)
	}

	fmt.Println("duration preserved:", len(out) == len(in))
	// Output: duration preserved: true
}

func ExampleScheduleInstants() {
	marks := epoch.Marks{0, 320, 640, 960}

	instants, err := psola.ScheduleInstants(marks, 2.0)
	if err != nil {
		panic(err)
	}

	fmt.Println(instants)
	// Output: [0 160 320 480]
}
