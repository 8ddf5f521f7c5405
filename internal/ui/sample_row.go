package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/samplecrate/sample-browser/internal/model"
)

// fixedWidth pins an object to a column width using a transparent rectangle
// underneath, so header and rows line up.
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// SampleRow is one catalog entry in the table: its column values plus the
// preview, external-link, enable/disable, and remove controls.
type SampleRow struct {
	widget.BaseWidget

	sample model.Sample

	titleLabel    *widget.Label
	attrLabel     *widget.Label
	durationLabel *widget.Label
	descLabel     *widget.Label
	licenseLabel  *widget.Label
	tagsLabel     *widget.Label

	previewBtn *widget.Button
	linkBtn    *widget.Button
	toggleBtn  *widget.Button
	removeBtn  *widget.Button

	box *fyne.Container

	onPreview  func(sample model.Sample)
	onOpenPage func(sample model.Sample)
	onToggle   func(id int)
	onRemove   func(id int)
}

// NewSampleRow creates a row for one sample.
func NewSampleRow(sample model.Sample) *SampleRow {
	r := &SampleRow{sample: sample}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.updateFromSample()
	return r
}

// SetCallbacks sets the row action callbacks.
func (r *SampleRow) SetCallbacks(
	onPreview func(sample model.Sample),
	onOpenPage func(sample model.Sample),
	onToggle func(id int),
	onRemove func(id int),
) {
	r.onPreview = onPreview
	r.onOpenPage = onOpenPage
	r.onToggle = onToggle
	r.onRemove = onRemove
}

// SetPreviewState updates the preview control to reflect the session state.
// The control doubles as the stop affordance while playing and is disabled
// while the fetch is in flight.
func (r *SampleRow) SetPreviewState(state model.PreviewState) {
	switch state {
	case model.PreviewLoading:
		r.previewBtn.SetText(LoadingLabel)
		r.previewBtn.Disable()
	case model.PreviewPlaying:
		r.previewBtn.SetText(StopLabel)
		r.previewBtn.Enable()
	case model.PreviewError:
		r.previewBtn.SetText(ErrorLabel)
		r.previewBtn.Enable()
	default:
		r.previewBtn.SetText(PlayLabel)
		r.previewBtn.Enable()
	}
}

func (r *SampleRow) createUI() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.attrLabel = widget.NewLabel("")
	r.attrLabel.Truncation = fyne.TextTruncateEllipsis

	r.durationLabel = widget.NewLabel("")
	r.durationLabel.Alignment = fyne.TextAlignTrailing

	r.descLabel = widget.NewLabel("")
	r.descLabel.Truncation = fyne.TextTruncateEllipsis

	r.licenseLabel = widget.NewLabel("")
	r.licenseLabel.Truncation = fyne.TextTruncateEllipsis

	r.tagsLabel = widget.NewLabel("")
	r.tagsLabel.Truncation = fyne.TextTruncateEllipsis

	r.previewBtn = widget.NewButton(PlayLabel, func() {
		if r.onPreview != nil {
			r.onPreview(r.sample)
		}
	})
	r.previewBtn.Importance = widget.MediumImportance

	r.linkBtn = widget.NewButton(IconLink, func() {
		if r.onOpenPage != nil {
			r.onOpenPage(r.sample)
		}
	})
	r.linkBtn.Importance = widget.LowImportance

	r.toggleBtn = widget.NewButton(DisableLabel, func() {
		if r.onToggle != nil {
			r.onToggle(r.sample.ID)
		}
	})
	r.toggleBtn.Importance = widget.LowImportance

	r.removeBtn = widget.NewButton(IconRemove, func() {
		if r.onRemove != nil {
			r.onRemove(r.sample.ID)
		}
	})
	r.removeBtn.Importance = widget.DangerImportance

	columns := container.NewHBox(
		fixedWidth(PreviewColWidth, r.previewBtn),
		fixedWidth(TitleColWidth, r.titleLabel),
		fixedWidth(AuthorColWidth, r.attrLabel),
		fixedWidth(DurationColWidth, r.durationLabel),
		fixedWidth(DescColWidth, r.descLabel),
		fixedWidth(LicenseColWidth, r.licenseLabel),
		fixedWidth(TagsColWidth, r.tagsLabel),
	)

	actions := container.NewHBox(r.linkBtn, r.toggleBtn, r.removeBtn)

	r.box = container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, columns),
		widget.NewSeparator(),
	)
}

func (r *SampleRow) updateFromSample() {
	title := r.sample.DisplayTitle()
	if !r.sample.Enabled {
		// disabled records stay listed (under the show-disabled filter)
		// but are visually flagged
		title += " (disabled)"
		r.titleLabel.TextStyle = fyne.TextStyle{Italic: true}
	}
	r.titleLabel.SetText(title)

	r.attrLabel.SetText(r.sample.DisplayAttribution())
	r.durationLabel.SetText(r.sample.DisplayDuration())
	r.descLabel.SetText(r.sample.DisplayDescription())
	r.licenseLabel.SetText(r.sample.DisplayLicense())
	r.tagsLabel.SetText(r.sample.DisplayTags())

	if r.sample.Enabled {
		r.toggleBtn.SetText(DisableLabel)
	} else {
		r.toggleBtn.SetText(EnableLabel)
	}
}

// CreateRenderer creates the widget renderer.
func (r *SampleRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.box)
}
