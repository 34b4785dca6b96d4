// Package dialog provides the native dialogs of the app.
package dialog

import (
	"github.com/ncruces/zenity"

	"screensaver-launcher/internal/config"
	"screensaver-launcher/internal/i18n"
)

// SelectHotkey asks for a new hotkey in two steps. It returns
// zenity.ErrCanceled when the user backs out.
func SelectHotkey(current config.Shortcut) (config.Shortcut, error) {
	// Step 1: modifiers
	selectedMods, err := zenity.ListMultiple(
		i18n.T("dialog_modifiers"),
		modifierLabels(),
		zenity.Title(i18n.T("dialog_modifiers_title")),
		zenity.DefaultItems(labelsFor(current.Modifiers)...),
	)
	if err != nil {
		return current, err
	}

	// Step 2: key
	selectedKey, err := zenity.List(
		i18n.T("dialog_key"),
		keyLabels(),
		zenity.Title(i18n.T("dialog_key_title")),
		zenity.DefaultItems(string(current.Key)),
	)
	if err != nil {
		return current, err
	}

	return config.ParseShortcut(modifiersFromLabels(selectedMods).Symbols() + "+" + selectedKey)
}

// ShowAbout shows the about box.
func ShowAbout(version string) {
	zenity.Info(i18n.T("about_text")+"\n\n"+version,
		zenity.Title(i18n.T("tray_about")),
	)
}

// ShowError shows an error message box.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}

// modifierLabel renders a modifier as "⌘ Command".
func modifierLabel(m config.Modifier) string {
	return config.ModifierSymbol(m) + " " + config.ModifierName(m)
}

func modifierLabels() []string {
	mods := config.AvailableModifiers()
	labels := make([]string, len(mods))
	for i, m := range mods {
		labels[i] = modifierLabel(m)
	}
	return labels
}

func labelsFor(set config.Modifier) []string {
	var labels []string
	for _, m := range set.List() {
		labels = append(labels, modifierLabel(m))
	}
	return labels
}

func modifiersFromLabels(labels []string) config.Modifier {
	var set config.Modifier
	for _, l := range labels {
		for _, m := range config.AvailableModifiers() {
			if l == modifierLabel(m) {
				set |= m
			}
		}
	}
	return set
}

func keyLabels() []string {
	keys := config.AvailableKeys()
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = string(k)
	}
	return labels
}
