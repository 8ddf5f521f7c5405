package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"

	"github.com/samplecrate/sample-browser/internal/catalog"
	"github.com/samplecrate/sample-browser/internal/config"
	"github.com/samplecrate/sample-browser/internal/freesound"
	"github.com/samplecrate/sample-browser/internal/model"
	"github.com/samplecrate/sample-browser/internal/preview"
)

// BrowserPanel is the main catalog view: the filter bar, the sortable table
// of samples and the notification strip. It owns no catalog state of its
// own; every render re-reads the store so the table never drifts from it.
type BrowserPanel struct {
	window   fyne.Window
	settings *config.Settings

	store    catalog.Store
	mutator  *catalog.Mutator
	previews *preview.Controller
	client   *freesound.Client

	filters catalog.Filters
	sorter  catalog.Sorter

	searchEntry   *widget.Entry
	tagSelect     *widget.Select
	licenseSelect *widget.Select
	disabledCheck *widget.Check

	sortButtons map[catalog.SortKey]*widget.Button

	rowsBox *fyne.Container
	rows    map[int]*SampleRow
	visible []model.Sample

	notificationLabel     *widget.Label
	notificationContainer *fyne.Container
	notifyMu              sync.Mutex
	notifySeq             int

	content fyne.CanvasObject
}

// NewBrowserPanel creates the panel and wires it to the catalog and the
// preview controller. The controller's state changes and the mutator's
// catalog changes both land back here as re-renders.
func NewBrowserPanel(
	window fyne.Window,
	settings *config.Settings,
	store catalog.Store,
	mutator *catalog.Mutator,
	previews *preview.Controller,
	client *freesound.Client,
) *BrowserPanel {
	p := &BrowserPanel{
		window:   window,
		settings: settings,
		store:    store,
		mutator:  mutator,
		previews: previews,
		client:   client,
		filters:  catalog.Filters{ShowDisabled: settings.GetShowDisabled()},
		sorter:   catalog.Sorter{Key: catalog.SortName, Dir: catalog.Ascending},
		rows:     map[int]*SampleRow{},
	}

	p.mutator.SetChangeCallback(p.onCatalogChange)
	p.previews.SetChangeCallback(p.onPreviewStateChange)

	p.setupUI()
	p.Render()
	return p
}

// Content returns the panel's root canvas object.
func (p *BrowserPanel) Content() fyne.CanvasObject {
	return p.content
}

func (p *BrowserPanel) setupUI() {
	// Filter bar
	p.searchEntry = widget.NewEntry()
	p.searchEntry.SetPlaceHolder("Search title, author, description...")
	p.searchEntry.OnChanged = func(text string) {
		p.filters.Search = text
		p.Render()
	}

	p.tagSelect = widget.NewSelect([]string{AllTagsOption}, func(choice string) {
		if choice == AllTagsOption {
			p.filters.Tag = ""
		} else {
			p.filters.Tag = choice
		}
		p.Render()
	})
	p.tagSelect.Selected = AllTagsOption

	p.licenseSelect = widget.NewSelect([]string{AllLicensesOption}, func(choice string) {
		if choice == AllLicensesOption {
			p.filters.License = ""
		} else {
			p.filters.License = choice
		}
		p.Render()
	})
	p.licenseSelect.Selected = AllLicensesOption

	p.disabledCheck = widget.NewCheck("Show disabled", nil)
	p.disabledCheck.Checked = p.filters.ShowDisabled
	p.disabledCheck.OnChanged = func(on bool) {
		p.filters.ShowDisabled = on
		p.settings.SetShowDisabled(on)
		p.Render()
	}

	addBtn := widget.NewButton("Add samples", p.onShowSearch)
	addBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, p.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	filterBar := container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(addBtn, settingsBtn),
		container.NewBorder(nil, nil, nil,
			container.NewHBox(p.tagSelect, p.licenseSelect, p.disabledCheck),
			p.searchEntry,
		),
	)

	// Notification strip (hidden until Notify is called)
	p.notificationLabel = widget.NewLabel("")
	p.notificationLabel.Alignment = fyne.TextAlignLeading
	p.notificationContainer = container.NewHBox(container.NewPadded(p.notificationLabel))
	p.notificationContainer.Hide()

	header := p.buildSortHeader()

	p.rowsBox = container.NewVBox()
	table := container.NewVScroll(p.rowsBox)

	p.content = container.NewBorder(
		container.NewVBox(filterBar, p.notificationContainer, header),
		nil, nil, nil,
		table,
	)
}

// buildSortHeader creates one clickable header button per column. Clicking
// the active column flips direction, clicking another column sorts by it
// ascending.
func (p *BrowserPanel) buildSortHeader() fyne.CanvasObject {
	p.sortButtons = map[catalog.SortKey]*widget.Button{}

	column := func(width float32, label string, key catalog.SortKey) fyne.CanvasObject {
		btn := widget.NewButton(label, func() {
			if p.sorter.Key == key {
				p.sorter.Dir = p.sorter.Dir.Flip()
			} else {
				p.sorter.Key = key
				p.sorter.Dir = catalog.Ascending
			}
			p.refreshSortHeader()
			p.Render()
		})
		btn.Importance = widget.LowImportance
		btn.Alignment = widget.ButtonAlignLeading
		p.sortButtons[key] = btn
		return fixedWidth(width, btn)
	}

	header := container.NewHBox(
		fixedWidth(PreviewColWidth, widget.NewLabel("")),
		column(TitleColWidth, "Title", catalog.SortName),
		column(AuthorColWidth, "Author", catalog.SortAuthor),
		column(DurationColWidth, "Length", catalog.SortDuration),
		column(DescColWidth, "Description", catalog.SortDescription),
		column(LicenseColWidth, "License", catalog.SortLicense),
		column(TagsColWidth, "Tags", catalog.SortTags),
	)
	p.refreshSortHeader()
	return container.NewVBox(header, widget.NewSeparator())
}

func (p *BrowserPanel) refreshSortHeader() {
	names := map[catalog.SortKey]string{
		catalog.SortName:        "Title",
		catalog.SortAuthor:      "Author",
		catalog.SortDuration:    "Length",
		catalog.SortDescription: "Description",
		catalog.SortLicense:     "License",
		catalog.SortTags:        "Tags",
	}
	for key, btn := range p.sortButtons {
		label := names[key]
		if key == p.sorter.Key {
			if p.sorter.Dir == catalog.Ascending {
				label += " " + IconSortAsc
			} else {
				label += " " + IconSortDesc
			}
		}
		btn.SetText(label)
	}
}

// Render rebuilds the visible table from the store through the current
// filters and sorter. Rows are recreated rather than patched; catalogs are
// small enough that this is simpler and never stale.
func (p *BrowserPanel) Render() {
	all := p.store.Catalog()

	p.refreshFilterOptions(all)

	view := p.filters.Apply(all)
	p.sorter.Sort(view)
	p.visible = view

	p.rowsBox.RemoveAll()
	p.rows = map[int]*SampleRow{}

	for _, s := range p.visible {
		row := NewSampleRow(s)
		row.SetCallbacks(p.onPreview, p.onOpenPage, p.onToggle, p.onRemove)
		row.SetPreviewState(p.previews.State(s.ID))
		p.rows[s.ID] = row
		p.rowsBox.Add(row)
	}

	if len(p.visible) == 0 {
		empty := widget.NewLabel("No samples match the current filters.")
		empty.Alignment = fyne.TextAlignCenter
		p.rowsBox.Add(empty)
	}

	p.rowsBox.Refresh()
}

// refreshFilterOptions rebuilds the tag and license dropdowns from the full
// catalog, keeping the current selection when it still exists.
func (p *BrowserPanel) refreshFilterOptions(all []model.Sample) {
	tags := append([]string{AllTagsOption}, catalog.TagOptions(all)...)
	licenses := append([]string{AllLicensesOption}, catalog.LicenseOptions(all)...)

	p.tagSelect.Options = tags
	if !containsOption(tags, p.tagSelect.Selected) {
		p.tagSelect.Selected = AllTagsOption
		p.filters.Tag = ""
	}
	p.tagSelect.Refresh()

	p.licenseSelect.Options = licenses
	if !containsOption(licenses, p.licenseSelect.Selected) {
		p.licenseSelect.Selected = AllLicensesOption
		p.filters.License = ""
	}
	p.licenseSelect.Refresh()
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// Notify implements catalog.Notifier. Messages replace each other and
// auto-hide after a few seconds unless a newer one arrived in between.
func (p *BrowserPanel) Notify(message string) {
	p.notifyMu.Lock()
	p.notifySeq++
	seq := p.notifySeq
	p.notifyMu.Unlock()

	fyne.Do(func() {
		p.notificationLabel.SetText(message)
		p.notificationContainer.Show()
		p.notificationContainer.Refresh()
	})

	time.AfterFunc(NotificationAutoHide, func() {
		p.notifyMu.Lock()
		stale := seq != p.notifySeq
		p.notifyMu.Unlock()
		if stale {
			return
		}
		fyne.Do(func() {
			p.notificationContainer.Hide()
		})
	})
}

// onCatalogChange handles mutator change notifications. These may arrive
// from any goroutine, so the re-render is marshaled onto the UI thread.
func (p *BrowserPanel) onCatalogChange() {
	fyne.Do(p.Render)
}

// onPreviewStateChange handles controller state notifications. Only the
// affected row is touched.
func (p *BrowserPanel) onPreviewStateChange(sampleID int, state model.PreviewState) {
	fyne.Do(func() {
		if row, ok := p.rows[sampleID]; ok {
			row.SetPreviewState(state)
		}
	})
}

func (p *BrowserPanel) onPreview(sample model.Sample) {
	p.previews.Toggle(sample)
}

func (p *BrowserPanel) onOpenPage(sample model.Sample) {
	if err := browser.OpenURL(sample.PageURL()); err != nil {
		logrus.Warnf("Failed to open sample page for %d: %v", sample.ID, err)
		p.Notify("Could not open the sample page in a browser")
	}
}

func (p *BrowserPanel) onToggle(id int) {
	p.mutator.ToggleEnabled(id)
}

func (p *BrowserPanel) onRemove(id int) {
	p.previews.Stop()
	p.mutator.Remove(id)
}

func (p *BrowserPanel) onShowSearch() {
	if p.settings.GetAPIToken() == "" {
		p.Notify("Set a Freesound API token in settings before searching")
		return
	}
	ShowSearchDialog(p.window, p.client, p.mutator, p.settings)
}

func (p *BrowserPanel) onShowSettings() {
	ShowSettingsDialog(p.window, p.settings, func() {
		p.client.Token = p.settings.GetAPIToken()
		p.Notify("Settings saved. Storage changes apply after restart.")
	})
}
