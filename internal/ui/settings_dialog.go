package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/samplecrate/sample-browser/internal/config"
)

// SettingsDialog edits the Freesound credentials and the storage settings.
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	tokenEntry     *widget.Entry
	providerSelect *widget.Select
	dbPathEntry    *widget.Entry
	pageSizeEntry  *widget.Entry
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}
	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.tokenEntry = widget.NewPasswordEntry()
	sd.tokenEntry.SetPlaceHolder("Freesound API token")

	sd.providerSelect = widget.NewSelect(sd.settings.GetStoreProviderOptions(), nil)

	sd.dbPathEntry = widget.NewEntry()
	sd.dbPathEntry.SetPlaceHolder(config.DefaultCatalogDBPath)

	sd.pageSizeEntry = widget.NewEntry()
	sd.pageSizeEntry.SetPlaceHolder("1-" + strconv.Itoa(config.MaxSearchPageSize))

	form := container.NewVBox(
		widget.NewLabel("Freesound"),
		widget.NewSeparator(),

		widget.NewLabel("API Token:"),
		sd.tokenEntry,

		widget.NewLabel("Search Page Size:"),
		sd.pageSizeEntry,

		widget.NewSeparator(),
		widget.NewLabel("Catalog Storage"),
		widget.NewSeparator(),

		widget.NewLabel("Provider:"),
		sd.providerSelect,

		widget.NewLabel("Database Path (sqlite only):"),
		sd.dbPathEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.tokenEntry.SetText(sd.settings.GetAPIToken())
	sd.providerSelect.SetSelected(sd.settings.GetStoreProvider())
	sd.dbPathEntry.SetText(sd.settings.GetCatalogDBPath())
	sd.pageSizeEntry.SetText(strconv.Itoa(sd.settings.GetSearchPageSize()))
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIToken(sd.tokenEntry.Text)

	if sd.providerSelect.Selected != "" {
		sd.settings.SetStoreProvider(sd.providerSelect.Selected)
	}

	if sd.dbPathEntry.Text != "" {
		sd.settings.SetCatalogDBPath(sd.dbPathEntry.Text)
	}

	if sd.pageSizeEntry.Text != "" {
		if size, err := strconv.Atoi(sd.pageSizeEntry.Text); err == nil {
			sd.settings.SetSearchPageSize(size)
		}
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
