// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	ZH Language = "zh"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":    "Screen Saver Launcher",
		"app_tooltip": "Screen Saver Launcher",

		// Tray menu
		"tray_ready":                "Ready",
		"tray_launched":             "Screen saver started",
		"tray_failed":               "Launch failed",
		"tray_launch":               "Start Screen Saver",
		"tray_launch_hint":          "Start the screen saver now",
		"tray_show_window":          "Show Main Window",
		"tray_show_window_hint":     "Open the launcher window",
		"tray_settings":             "Settings...",
		"tray_settings_hint":        "Hotkey and startup options",
		"tray_change_hotkey":        "Change Hotkey...",
		"tray_change_hotkey_hint":   "Pick a new global hotkey",
		"tray_launch_at_login":      "Launch at Login",
		"tray_launch_at_login_hint": "Start automatically when you log in",
		"tray_notifications":        "Notifications",
		"tray_notifications_hint":   "Show notifications",
		"tray_about":                "About Screen Saver Launcher",
		"tray_quit":                 "Quit",
		"tray_quit_hint":            "Close application",

		// Main window
		"main_title":     "Screen Saver Launcher",
		"main_subtitle":  "Beautiful, simple screen saver control",
		"main_launch":    "Start Screen Saver",
		"main_success":   "Screen saver started",
		"main_settings":  "Settings",
		"main_hotkey":    "Global hotkey",
		"main_quit_hint": "⌘+Q Quit",

		// Settings window
		"settings_title":           "Settings",
		"settings_startup":         "Startup",
		"settings_launch_at_login": "Launch at login",
		"settings_hotkey":          "Global Hotkey",
		"settings_current":         "Current hotkey:",
		"settings_modifiers":       "Modifiers:",
		"settings_key":             "Key:",
		"settings_done":            "Done",
		"settings_ui_language":     "Interface language",

		// Notifications
		"notify_launched":          "Screen saver started",
		"notify_error":             "Error",
		"notify_login_enabled":     "Launch at login enabled",
		"notify_login_enabled_msg": "The app will start automatically when you log in",

		// Dialogs
		"dialog_modifiers":       "Select modifiers:",
		"dialog_modifiers_title": "Hotkey - Modifiers",
		"dialog_key":             "Select key:",
		"dialog_key_title":       "Hotkey - Key",
		"about_text":             "A beautiful, smooth, modern screen saver launcher.",

		// Errors
		"error_launch":          "Launch failed",
		"error_hotkey_register": "Could not register hotkey",
		"error_hotkey_invalid":  "Invalid hotkey",
		"error_login":           "Could not change launch at login",
	},
	ZH: {
		"app_name":    "屏幕保护启动器",
		"app_tooltip": "屏幕保护启动器",

		"tray_ready":                "就绪",
		"tray_launched":             "屏幕保护已启动",
		"tray_failed":               "启动失败",
		"tray_launch":               "启动屏幕保护",
		"tray_launch_hint":          "立即启动屏幕保护",
		"tray_show_window":          "显示主窗口",
		"tray_show_window_hint":     "打开启动器窗口",
		"tray_settings":             "设置",
		"tray_settings_hint":        "快捷键与启动选项",
		"tray_change_hotkey":        "更改快捷键...",
		"tray_change_hotkey_hint":   "选择新的全局快捷键",
		"tray_launch_at_login":      "开机自动启动",
		"tray_launch_at_login_hint": "登录时自动运行",
		"tray_notifications":        "通知",
		"tray_notifications_hint":   "显示通知",
		"tray_about":                "关于屏幕保护启动器",
		"tray_quit":                 "退出",
		"tray_quit_hint":            "关闭应用",

		"main_title":     "屏幕保护启动器",
		"main_subtitle":  "美丽、简洁的屏幕保护控制",
		"main_launch":    "启动屏幕保护",
		"main_success":   "屏幕保护已启动",
		"main_settings":  "设置",
		"main_hotkey":    "全局快捷键",
		"main_quit_hint": "⌘+Q 退出",

		"settings_title":           "设置",
		"settings_startup":         "启动选项",
		"settings_launch_at_login": "开机自动启动",
		"settings_hotkey":          "全局快捷键",
		"settings_current":         "当前快捷键:",
		"settings_modifiers":       "修饰键:",
		"settings_key":             "按键:",
		"settings_done":            "完成",
		"settings_ui_language":     "界面语言",

		"notify_launched":          "屏幕保护已启动",
		"notify_error":             "错误",
		"notify_login_enabled":     "开机启动已启用",
		"notify_login_enabled_msg": "应用将在系统启动时自动运行",

		"dialog_modifiers":       "选择修饰键:",
		"dialog_modifiers_title": "快捷键 - 修饰键",
		"dialog_key":             "选择按键:",
		"dialog_key_title":       "快捷键 - 按键",
		"about_text":             "一个美观、流畅、现代化的屏幕保护启动应用",

		"error_launch":          "启动失败",
		"error_hotkey_register": "无法注册快捷键",
		"error_hotkey_invalid":  "快捷键无效",
		"error_login":           "无法更改开机启动设置",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to English, then to the key itself
	if s, ok := translations[EN][key]; ok {
		return s
	}
	return key
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; ok {
		current = lang
	}
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, ZH}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case EN:
		return "English"
	case ZH:
		return "中文"
	default:
		return string(lang)
	}
}
