// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/wavetable/audio"
)

// ExampleTriangle shows the phase alignment of a short triangle cycle.
func ExampleTriangle() {
	cycle, err := audio.Triangle(8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(cycle)
	// Output: [0 -0.5 -1 -0.5 0 0.5 1 0.5]
}

func ExampleRegistry_Generate() {
	shapes := audio.DefaultShapes()
	fmt.Println(shapes.Names())

	cycle, err := shapes.Generate(audio.ShapeSaw, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cycle)
	// Output:
	// [saw sine triangle]
	// [0 0.5 -1 -0.5]
}
