//go:build ignore

// Generates the tray icons.
// Usage: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("create %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_idle.png", color.RGBA{71, 118, 230, 255}},    // #4776E6
		{"icon_launched.png", color.RGBA{52, 199, 89, 255}}, // #34C759
		{"icon_failed.png", color.RGBA{255, 59, 48, 255}},   // #FF3B30
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("generate %s: %v", icon.name, err)
		}
		log.Printf("wrote %s", path)
	}
}

// inStar reports whether (dx, dy) lies inside a four-pointed sparkle of radius r.
func inStar(dx, dy, r float64) bool {
	const p = 0.6
	return math.Pow(math.Abs(dx), p)+math.Pow(math.Abs(dy), p) <= math.Pow(r, p)
}

func generateIcon(path string, c color.RGBA) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			// Large sparkle, small sparkle top right
			if inStar(fx-28, fy-36, 26) || inStar(fx-50, fy-13, 11) {
				img.Set(x, y, c)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
