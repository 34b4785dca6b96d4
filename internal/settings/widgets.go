package settings

import (
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"screensaver-launcher/internal/config"
	"screensaver-launcher/internal/i18n"
	"screensaver-launcher/internal/ui"
)

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	ui.Fill(gtx, ui.ColorBG)

	sel := w.getSelection()

	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Title (fixed)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.Label(gtx, unit.Sp(22), i18n.T("settings_title"), ui.ColorText, font.Bold)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			// Scrollable content area
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				return material.List(th, &w.contentList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(w.drawStartupSection),
						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawHotkeySection(gtx, sel)
						}),
						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
						layout.Rigid(w.drawUILanguageSection),
					)
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Done button (fixed at bottom)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{}
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return ui.Button(gtx, &w.doneBtn, i18n.T("settings_done"), ui.ColorAccent, ui.ColorText)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawStartupSection(gtx layout.Context) layout.Dimensions {
	return ui.Panel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.SectionHeader(gtx, i18n.T("settings_startup"))
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return ui.Label(gtx, unit.Sp(14), i18n.T("settings_launch_at_login"), ui.ColorText, font.Normal)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						w.mu.Lock()
						defer w.mu.Unlock()
						return ui.Toggle(gtx, &w.loginToggle)
					}),
				)
			}),
		)
	})
}

func (w *Window) drawHotkeySection(gtx layout.Context, sel selection) layout.Dimensions {
	return ui.Panel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.SectionHeader(gtx, i18n.T("settings_hotkey"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Current hotkey as key caps
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawRow(gtx, i18n.T("settings_current"), func(gtx layout.Context) layout.Dimensions {
					return drawChips(gtx, sel.chips())
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawRow(gtx, i18n.T("settings_modifiers"), func(gtx layout.Context) layout.Dimensions {
					return w.drawModifierButtons(gtx, sel)
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawRow(gtx, i18n.T("settings_key"), func(gtx layout.Context) layout.Dimensions {
					return w.drawKeySelector(gtx, sel)
				})
			}),
		)
	})
}

func (w *Window) drawRow(gtx layout.Context, label string, content layout.Widget) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(90))
			return ui.Label(gtx, unit.Sp(14), label, ui.ColorTextDim, font.Normal)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
		layout.Flexed(1, content),
	)
}

func drawChips(gtx layout.Context, chips []string) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(chips)*2)
	for i, c := range chips {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout))
		}
		text := c
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.Chip(gtx, text)
		}))
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (w *Window) drawModifierButtons(gtx layout.Context, sel selection) layout.Dimensions {
	mods := config.AvailableModifiers()
	children := make([]layout.FlexChild, 0, len(mods)*2)
	for i, m := range mods {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
		}
		mod := m
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.SmallButton(gtx, w.modButtons[mod], config.ModifierSymbol(mod), sel.mods.Has(mod))
		}))
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (w *Window) drawKeySelector(gtx layout.Context, sel selection) layout.Dimensions {
	keys := config.AvailableKeys()
	th := material.NewTheme()

	// Constrain height for horizontal list
	gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(40))
	gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
	return material.List(th, &w.keyList).Layout(gtx, len(keys), func(gtx layout.Context, i int) layout.Dimensions {
		k := keys[i]
		return layout.Inset{Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return ui.SmallButton(gtx, w.keyButtons[k], string(k), sel.key == k)
		})
	})
}

func (w *Window) drawUILanguageSection(gtx layout.Context) layout.Dimensions {
	selectedLang := w.getSelectedUILang()
	langs := i18n.AvailableLanguages()

	return ui.Panel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.SectionHeader(gtx, i18n.T("settings_ui_language"))
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				children := make([]layout.FlexChild, 0, len(langs)*2)
				for i, l := range langs {
					if i > 0 {
						children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
					}
					lang := l
					children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return ui.SmallButton(gtx, w.langButtons[lang], i18n.LanguageName(lang), selectedLang == lang)
					}))
				}
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
			}),
		)
	})
}
