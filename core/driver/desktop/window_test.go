// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidIcon(size int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestScaleIcons(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	scaled := scaleIcons([]image.Image{solidIcon(64, red), solidIcon(16, blue)})
	require.Len(t, scaled, len(iconSizes))
	for i, size := range iconSizes {
		b := scaled[i].Bounds()
		assert.Equal(t, size, b.Dx())
		assert.Equal(t, size, b.Dy())
	}

	// Each size is resampled from the candidate with the closest width:
	// the 16px icon from the blue candidate, the 48px from the red.
	assert.Equal(t, blue, scaled[0].(*image.RGBA).RGBAAt(8, 8))
	assert.Equal(t, red, scaled[2].(*image.RGBA).RGBAAt(24, 24))
}

func TestScaleIconsEmpty(t *testing.T) {
	assert.Nil(t, scaleIcons(nil))
	assert.Nil(t, scaleIcons([]image.Image{nil}))
}
