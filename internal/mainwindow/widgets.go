package mainwindow

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"screensaver-launcher/internal/config"
	"screensaver-launcher/internal/i18n"
	"screensaver-launcher/internal/ui"
)

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	ui.Fill(gtx, ui.ColorBG)

	snap, hotkey, pressAt := w.getState()

	return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			// Sparkle badge
			layout.Rigid(w.drawBadge),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.CenteredLabel(gtx, unit.Sp(24), i18n.T("main_title"), ui.ColorText, font.Bold)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.CenteredLabel(gtx, unit.Sp(13), i18n.T("main_subtitle"), ui.ColorTextDim, font.Normal)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(20)}.Layout),

			// Launch button
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				var elapsed time.Duration = -1
				if !pressAt.IsZero() {
					elapsed = time.Since(pressAt)
				}
				return w.drawLaunchButton(gtx, pressScale(elapsed))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Success / error banner
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				text, isErr := bannerText(snap)
				if text == "" {
					return layout.Dimensions{}
				}
				return drawBanner(gtx, text, isErr)
			}),

			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.Button(gtx, &w.settingsBtn, i18n.T("main_settings"), ui.ColorPanel, ui.ColorText)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Footer
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return drawFooter(gtx, hotkey)
			}),
		)
	})
}

func (w *Window) drawBadge(gtx layout.Context) layout.Dimensions {
	size := unit.Dp(64)
	return layout.Stack{Alignment: layout.Center}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return ui.Disc(gtx, size, ui.ColorPanelLight)
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return ui.Sparkle(gtx, unit.Dp(40), ui.Blend(ui.ColorAccent, ui.ColorAccentAlt, 0.5))
		}),
	)
}

func (w *Window) drawLaunchButton(gtx layout.Context, scale float32) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := ui.Button(gtx, &w.launchBtn, "✦  "+i18n.T("main_launch"), ui.ColorAccent, ui.ColorText)
	call := macro.Stop()

	if scale != 1 {
		center := f32.Pt(float32(dims.Size.X)/2, float32(dims.Size.Y)/2)
		defer op.Affine(f32.Affine2D{}.Scale(center, f32.Pt(scale, scale))).Push(gtx.Ops).Pop()
	}
	call.Add(gtx.Ops)
	return dims
}

func drawBanner(gtx layout.Context, text string, isErr bool) layout.Dimensions {
	fg := ui.ColorSuccess
	if isErr {
		fg = ui.ColorError
	}
	bg := ui.Blend(ui.ColorBG, fg, 0.18)
	return ui.Background(gtx, bg, unit.Dp(8), func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(14), Right: unit.Dp(14),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return ui.Label(gtx, unit.Sp(13), text, fg, font.Medium)
		})
	})
}

func drawFooter(gtx layout.Context, hotkey string) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.Label(gtx, unit.Sp(12), footerHotkey(hotkey), ui.ColorTextDim, font.Normal)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: image.Pt(gtx.Constraints.Min.X, 0)}
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.Label(gtx, unit.Sp(12), i18n.T("main_quit_hint"), ui.ColorTextDim, font.Normal)
		}),
	)
}

// footerHotkey formats "Global hotkey: ⌘⌥+S".
func footerHotkey(hotkey string) string {
	return i18n.T("main_hotkey") + ": " + config.DisplayHotkey(hotkey)
}
