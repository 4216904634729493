package shadow_test

import (
	"fmt"

	"github.com/gfxblit/EastVsWest/shadow"
)

func ExampleGenerate() {
	img := shadow.Generate()
	fmt.Printf("%dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())
	// Output: 96x96
}
