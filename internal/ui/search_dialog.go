package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/samplecrate/sample-browser/internal/catalog"
	"github.com/samplecrate/sample-browser/internal/config"
	"github.com/samplecrate/sample-browser/internal/freesound"
)

const searchRequestTimeout = 30 * time.Second

// SearchDialog lets the user query Freesound and add results to the catalog.
type SearchDialog struct {
	window   fyne.Window
	client   *freesound.Client
	mutator  *catalog.Mutator
	settings *config.Settings

	queryEntry  *widget.Entry
	searchBtn   *widget.Button
	statusLabel *widget.Label
	resultsBox  *fyne.Container
	dialog      dialog.Dialog
}

// ShowSearchDialog creates and shows the sample search dialog.
func ShowSearchDialog(window fyne.Window, client *freesound.Client, mutator *catalog.Mutator, settings *config.Settings) {
	sd := &SearchDialog{
		window:   window,
		client:   client,
		mutator:  mutator,
		settings: settings,
	}
	sd.createUI()
	sd.dialog.Show()
	window.Canvas().Focus(sd.queryEntry)
}

func (sd *SearchDialog) createUI() {
	sd.queryEntry = widget.NewEntry()
	sd.queryEntry.SetPlaceHolder("Search Freesound...")
	sd.queryEntry.OnSubmitted = func(string) { sd.onSearch() }

	sd.searchBtn = widget.NewButton("Search", sd.onSearch)
	sd.searchBtn.Importance = widget.HighImportance

	sd.statusLabel = widget.NewLabel("")
	sd.statusLabel.Hide()

	sd.resultsBox = container.NewVBox()

	content := container.NewBorder(
		container.NewVBox(
			container.NewBorder(nil, nil, nil, sd.searchBtn, sd.queryEntry),
			sd.statusLabel,
		),
		nil, nil, nil,
		container.NewVScroll(sd.resultsBox),
	)

	sd.dialog = dialog.NewCustom("Add Samples", "Close", content, sd.window)
	sd.dialog.Resize(fyne.NewSize(SearchDialogWidth, SearchDialogHeight))
}

func (sd *SearchDialog) onSearch() {
	query := strings.TrimSpace(sd.queryEntry.Text)
	if query == "" {
		return
	}

	sd.setStatus("Searching...")
	sd.searchBtn.Disable()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), searchRequestTimeout)
		defer cancel()

		sounds, err := sd.client.Search(ctx, query, sd.settings.GetSearchPageSize())

		fyne.Do(func() {
			sd.searchBtn.Enable()
			if err != nil {
				logrus.Warnf("Freesound search failed: %v", err)
				sd.setStatus("Search failed: " + err.Error())
				return
			}
			sd.showResults(sounds)
		})
	}()
}

func (sd *SearchDialog) showResults(sounds []freesound.Sound) {
	sd.resultsBox.RemoveAll()

	if len(sounds) == 0 {
		sd.setStatus("No results")
		sd.resultsBox.Refresh()
		return
	}
	sd.setStatus(fmt.Sprintf("%d results", len(sounds)))

	for _, sound := range sounds {
		sample := sound.ToSample()

		title := widget.NewLabel(sample.DisplayTitle())
		title.TextStyle = fyne.TextStyle{Bold: true}
		title.Truncation = fyne.TextTruncateEllipsis

		detail := widget.NewLabel(fmt.Sprintf("%s · %s · %s",
			sample.DisplayAttribution(), sample.DisplayDuration(), sample.DisplayLicense()))
		detail.Truncation = fyne.TextTruncateEllipsis

		addBtn := widget.NewButton("Add", nil)
		addBtn.OnTapped = func() {
			sd.mutator.Add(sample)
			addBtn.SetText("Added")
			addBtn.Disable()
		}

		row := container.NewBorder(nil, nil, nil, addBtn,
			container.NewVBox(title, detail),
		)
		sd.resultsBox.Add(row)
		sd.resultsBox.Add(widget.NewSeparator())
	}

	sd.resultsBox.Refresh()
}

func (sd *SearchDialog) setStatus(message string) {
	sd.statusLabel.SetText(message)
	sd.statusLabel.Show()
}
