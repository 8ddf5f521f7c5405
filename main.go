package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/samplecrate/sample-browser/internal/catalog"
	"github.com/samplecrate/sample-browser/internal/config"
	"github.com/samplecrate/sample-browser/internal/freesound"
	"github.com/samplecrate/sample-browser/internal/player"
	"github.com/samplecrate/sample-browser/internal/preview"
	"github.com/samplecrate/sample-browser/internal/store"
	"github.com/samplecrate/sample-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.samplecrate.sample-browser"
	AppName = "Sample Browser"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	logrus.Infof("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	catalogStore, err := store.New(settings.GetStoreProvider(), myApp.Preferences(), settings.GetCatalogDBPath())
	if err != nil {
		// Fall back to preferences so a bad sqlite path never blocks startup.
		logrus.Errorf("failed to open catalog store: %v", err)
		catalogStore, err = store.NewPrefStore(myApp.Preferences())
		if err != nil {
			logrus.Fatalf("failed to open fallback catalog store: %v", err)
		}
	}

	client := freesound.NewClient(settings.GetAPIToken())
	previews := preview.NewController(client, &player.FFPlay{})
	mutator := catalog.NewMutator(catalogStore, nil)

	panel := ui.NewBrowserPanel(myWindow, settings, catalogStore, mutator, previews, client)
	mutator.SetNotifier(panel)

	myWindow.SetContent(panel.Content())

	// Any preview still holding a temp file is cleaned up on exit.
	myWindow.SetOnClosed(previews.Stop)

	myWindow.ShowAndRun()
}
