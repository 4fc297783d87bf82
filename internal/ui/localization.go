package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyGameDirectory    = "game_directory"
	KeyGameDirHint      = "game_dir_hint"
	KeySelectDirectory  = "select_directory"
	KeyModManagement    = "mod_management"
	KeyInstallUE4SS     = "install_ue4ss"
	KeyInstallMod       = "install_mod"
	KeyOpenModsFolder   = "open_mods_folder"
	KeyInstalledMods    = "installed_mods"
	KeyNoModsDetected   = "no_mods_detected"
	KeyDebugOutput      = "debug_output"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyUIScale          = "ui_scale"
	KeyDebugMode        = "debug_mode"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyStop             = "stop"
	KeySelectDirFirst   = "select_dir_first"
	KeyInstallStarted   = "install_started"
	KeyInstallCompleted = "install_completed"
	KeyInstallFailed    = "install_failed"
	KeyInstallStopped   = "install_stopped"
	KeyRemoveFailed     = "remove_failed"
	KeySettingsSaved    = "settings_saved"
	KeyScaleRestartNote = "scale_restart_note"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Unnie Mod Manager",
		KeyGameDirectory:    "Game Win64 Directory",
		KeyGameDirHint:      "Example: Expedition 33\\Sandfall\\Binaries\\Win64",
		KeySelectDirectory:  "Select Win64 Directory",
		KeyModManagement:    "Mod Management",
		KeyInstallUE4SS:     "Install UE4SS",
		KeyInstallMod:       "Install Mod",
		KeyOpenModsFolder:   "Open Mods Folder",
		KeyInstalledMods:    "Installed Mods",
		KeyNoModsDetected:   "(No mods detected)",
		KeyDebugOutput:      "Debug Output",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyUIScale:          "UI Scale",
		KeyDebugMode:        "Debug Mode",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyStop:             "Stop",
		KeySelectDirFirst:   "Please select a Win64 directory first",
		KeyInstallStarted:   "Install started",
		KeyInstallCompleted: "Install completed",
		KeyInstallFailed:    "Install failed",
		KeyInstallStopped:   "Install stopped",
		KeyRemoveFailed:     "Failed to remove mod",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyScaleRestartNote: "UI scale applies after restart",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Unnie Mod Manager",
		KeyGameDirectory:    "Папка Win64 игры",
		KeyGameDirHint:      "Пример: Expedition 33\\Sandfall\\Binaries\\Win64",
		KeySelectDirectory:  "Выбрать папку Win64",
		KeyModManagement:    "Управление модами",
		KeyInstallUE4SS:     "Установить UE4SS",
		KeyInstallMod:       "Установить мод",
		KeyOpenModsFolder:   "Открыть папку Mods",
		KeyInstalledMods:    "Установленные моды",
		KeyNoModsDetected:   "(Моды не найдены)",
		KeyDebugOutput:      "Отладочный вывод",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyUIScale:          "Масштаб интерфейса",
		KeyDebugMode:        "Режим отладки",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeyStop:             "Стоп",
		KeySelectDirFirst:   "Сначала выберите папку Win64",
		KeyInstallStarted:   "Установка начата",
		KeyInstallCompleted: "Установка завершена",
		KeyInstallFailed:    "Ошибка установки",
		KeyInstallStopped:   "Установка остановлена",
		KeyRemoveFailed:     "Не удалось удалить мод",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyScaleRestartNote: "Масштаб применяется после перезапуска",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Unnie Mod Manager",
		KeyGameDirectory:    "Diretório Win64 do jogo",
		KeyGameDirHint:      "Exemplo: Expedition 33\\Sandfall\\Binaries\\Win64",
		KeySelectDirectory:  "Selecionar diretório Win64",
		KeyModManagement:    "Gerenciamento de Mods",
		KeyInstallUE4SS:     "Instalar UE4SS",
		KeyInstallMod:       "Instalar Mod",
		KeyOpenModsFolder:   "Abrir pasta Mods",
		KeyInstalledMods:    "Mods instalados",
		KeyNoModsDetected:   "(Nenhum mod detectado)",
		KeyDebugOutput:      "Saída de depuração",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyUIScale:          "Escala da interface",
		KeyDebugMode:        "Modo de depuração",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeyStop:             "Parar",
		KeySelectDirFirst:   "Selecione primeiro um diretório Win64",
		KeyInstallStarted:   "Instalação iniciada",
		KeyInstallCompleted: "Instalação concluída",
		KeyInstallFailed:    "Falha na instalação",
		KeyInstallStopped:   "Instalação interrompida",
		KeyRemoveFailed:     "Falha ao remover mod",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyScaleRestartNote: "A escala é aplicada após reiniciar",
	}
}
