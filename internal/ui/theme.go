// Package ui holds the shared palette and widgets of the Gio windows.
package ui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// Color palette - modern dark theme
var (
	ColorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	ColorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	ColorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	ColorButton     = color.NRGBA{R: 70, G: 70, B: 78, A: 255}
	ColorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	ColorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	ColorAccent     = color.NRGBA{R: 71, G: 118, B: 230, A: 255}
	ColorAccentAlt  = color.NRGBA{R: 142, G: 84, B: 233, A: 255}
	ColorSuccess    = color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	ColorError      = color.NRGBA{R: 255, G: 59, B: 48, A: 255}
)

// Label draws a text label in the given color.
func Label(gtx layout.Context, size unit.Sp, text string, col color.NRGBA, weight font.Weight) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = col
	lbl := material.Label(th, size, text)
	lbl.Font.Weight = weight
	return lbl.Layout(gtx)
}

// CenteredLabel is Label with centered text alignment.
func CenteredLabel(gtx layout.Context, size unit.Sp, text string, col color.NRGBA, weight font.Weight) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = col
	lbl := material.Label(th, size, text)
	lbl.Font.Weight = weight
	lbl.Alignment = 1 // Center
	return lbl.Layout(gtx)
}

// Background records content, then fills a rounded rectangle of the measured
// size behind it.
func Background(gtx layout.Context, bg color.NRGBA, radius unit.Dp, content layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := content(gtx)
	call := macro.Stop()

	rr := gtx.Dp(radius)
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bg, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

// Panel draws content on a padded rounded panel.
func Panel(gtx layout.Context, content layout.Widget) layout.Dimensions {
	return Background(gtx, ColorPanel, unit.Dp(12), func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
	})
}

// SectionHeader draws a small dimmed caption.
func SectionHeader(gtx layout.Context, text string) layout.Dimensions {
	return Label(gtx, unit.Sp(12), text, ColorTextDim, font.Medium)
}

// Button draws a rounded clickable button.
func Button(gtx layout.Context, btn *widget.Clickable, label string, bg, fg color.NRGBA) layout.Dimensions {
	return Background(gtx, bg, unit.Dp(8), func(gtx layout.Context) layout.Dimensions {
		return material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{
				Top: unit.Dp(10), Bottom: unit.Dp(10),
				Left: unit.Dp(20), Right: unit.Dp(20),
			}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return Label(gtx, unit.Sp(14), label, fg, font.Medium)
			})
		})
	})
}

// SmallButton draws a compact toggle style button, highlighted when selected.
func SmallButton(gtx layout.Context, btn *widget.Clickable, label string, selected bool) layout.Dimensions {
	bg := ColorButton
	if selected {
		bg = ColorAccent
	}
	return Background(gtx, bg, unit.Dp(6), func(gtx layout.Context) layout.Dimensions {
		return material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{
				Top: unit.Dp(6), Bottom: unit.Dp(6),
				Left: unit.Dp(10), Right: unit.Dp(10),
			}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return Label(gtx, unit.Sp(13), label, ColorText, font.Medium)
			})
		})
	})
}

// Chip draws a non-interactive key cap.
func Chip(gtx layout.Context, text string) layout.Dimensions {
	return Background(gtx, ColorPanelLight, unit.Dp(6), func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(6), Bottom: unit.Dp(6),
			Left: unit.Dp(10), Right: unit.Dp(10),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return Label(gtx, unit.Sp(15), text, ColorAccent, font.Bold)
		})
	})
}

// Toggle draws a material switch.
func Toggle(gtx layout.Context, toggle *widget.Bool) layout.Dimensions {
	th := material.NewTheme()
	sw := material.Switch(th, toggle, "")
	sw.Color.Enabled = ColorAccent
	sw.Color.Disabled = ColorPanelLight
	return sw.Layout(gtx)
}

// Sparkle draws a four point star of the given size.
func Sparkle(gtx layout.Context, size unit.Dp, col color.NRGBA) layout.Dimensions {
	s := float32(gtx.Dp(size))
	c := s / 2
	outer := s / 2
	inner := outer * 0.28

	var p clip.Path
	p.Begin(gtx.Ops)
	for i := 0; i < 8; i++ {
		angle := float64(i)*math.Pi/4 - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pt := f32.Pt(c+r*float32(math.Cos(angle)), c+r*float32(math.Sin(angle)))
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	p.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: p.End()}.Op())

	return layout.Dimensions{Size: image.Pt(int(s), int(s))}
}

// Disc fills a circle of the given diameter.
func Disc(gtx layout.Context, size unit.Dp, col color.NRGBA) layout.Dimensions {
	d := gtx.Dp(size)
	paint.FillShape(gtx.Ops, col, clip.Ellipse{Max: image.Pt(d, d)}.Op(gtx.Ops))
	return layout.Dimensions{Size: image.Pt(d, d)}
}

// Fill paints the whole constraint area.
func Fill(gtx layout.Context, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Rect{Max: gtx.Constraints.Max}.Op())
}

// Blend mixes two colors, t in [0,1].
func Blend(a, b color.NRGBA, t float32) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
