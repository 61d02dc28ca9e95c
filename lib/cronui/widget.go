// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package cronui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cronedit/cronedit/lib/clock"
	"github.com/cronedit/cronedit/lib/cron"
	"github.com/cronedit/cronedit/lib/cronsubmit"
	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/tui"
)

// Control names. Selects use these as their [gentleselect.Select.Name];
// frequency clones append "#2", "#3", and so on to their primary's name.
const (
	nameFrequency  = "frequency"
	namePeriod     = "period"
	nameMinute     = "minute"
	nameTimeMinute = "time-minute"
	nameTimeHour   = "time-hour"
	nameDayOfMonth = "day-of-month"
	nameMonth      = "month"
	nameDayOfWeek  = "day-of-week"
	nameSave       = "save"
)

// SubmitFailureMessage is the notice shown when a save fails.
const SubmitFailureMessage = "An error occurred when submitting your request."

// Widget is the cron editor. It implements tea.Model and must be used
// by pointer: Update mutates the widget in place and returns it.
type Widget struct {
	options    Options
	grammar    cron.Grammar
	submitter  Submitter // nil when saving is disabled
	logger     *slog.Logger
	theme      tui.Theme
	keys       KeyMap
	dialogKeys gentleselect.KeyMap
	handlers   []ChangeFunc
	clock      clock.Clock

	frequency  *gentleselect.Select // nil unless multi-frequency
	period     *gentleselect.Select
	minute     *gentleselect.Select
	timeMinute *gentleselect.Select
	timeHour   *gentleselect.Select
	dayOfMonth *gentleselect.Select
	month      *gentleselect.Select
	dayOfWeek  *gentleselect.Select

	// clones are the extra selects for the current category's
	// frequency field, in display order after their primary.
	clones []*gentleselect.Select

	base    string // Last value known to be saved.
	changed bool   // Value differs from base; only tracked while saving is enabled.
	busy    bool   // A save is in flight.
	notice  *tui.Notice

	focus       string
	hover       string
	heat        *tui.HeatTracker
	tickRunning bool

	width  int
	height int
}

// New builds a widget and sets it to options.Initial. The change
// handlers run once for the initial value.
func New(options Options) (*Widget, error) {
	if options.Initial == "" {
		options.Initial = DefaultInitial
	}
	if len(options.FrequencyOptions) == 0 {
		options.FrequencyOptions = DefaultFrequencyOptions()
	}
	if options.Effects == (gentleselect.Effects{}) {
		options.Effects = gentleselect.DefaultEffects()
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	theme := tui.DefaultTheme
	if options.Theme != nil {
		theme = *options.Theme
	}

	widget := &Widget{
		options:    options,
		grammar:    cron.Strict,
		submitter:  options.Submitter,
		logger:     logger,
		theme:      theme,
		keys:       DefaultKeyMap,
		dialogKeys: gentleselect.DefaultKeyMap,
		handlers:   append([]ChangeFunc(nil), options.OnChange...),
		clock:      options.Clock,
		heat:       tui.NewHeatTracker(),
		focus:      namePeriod,
		width:      80,
		height:     24,
	}

	if err := validateOptions(options); err != nil {
		return nil, err
	}
	if options.MultiFrequency {
		maximum := 1
		for _, frequency := range options.FrequencyOptions {
			maximum = max(maximum, frequency.Count)
		}
		widget.grammar = cron.Grammar{MaxListLength: maximum}
	}

	if widget.submitter == nil && options.URLSet != "" {
		client, err := cronsubmit.NewClient(cronsubmit.Config{
			URL:        options.URLSet,
			HTTPClient: options.HTTPClient,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("cronui: %w", err)
		}
		widget.submitter = client
	}

	if err := widget.buildSelects(); err != nil {
		return nil, fmt.Errorf("cronui: %w", err)
	}

	category, expression, err := widget.classify(options.Initial)
	if err != nil {
		return nil, fmt.Errorf("cronui: initial value %q: %w", options.Initial, err)
	}
	widget.base = options.Initial
	widget.apply(category, expression)
	widget.notifyChange()
	return widget, nil
}

func validateOptions(options Options) error {
	var errs []error
	for _, frequency := range options.FrequencyOptions {
		if frequency.Count < 1 {
			errs = append(errs, fmt.Errorf("cronui: frequency count %d must be at least 1", frequency.Count))
		}
		if frequency.Label == "" {
			errs = append(errs, fmt.Errorf("cronui: frequency count %d has no label", frequency.Count))
		}
	}
	for index, custom := range options.CustomValues {
		if custom.Label == "" || custom.Value == "" {
			errs = append(errs, fmt.Errorf("cronui: custom value %d needs both a label and a value", index+1))
		}
	}
	return errors.Join(errs...)
}

func (w *Widget) buildSelects() error {
	var errs []error
	build := func(name string, items []gentleselect.Item, layout gentleselect.Layout) *gentleselect.Select {
		selectBox, err := gentleselect.New(name, items, gentleselect.Options{Layout: layout, Effects: w.options.Effects})
		if err != nil {
			errs = append(errs, err)
		}
		return selectBox
	}
	plain := gentleselect.Layout{MinWidth: gentleselect.DefaultMinWidth}

	if w.options.MultiFrequency {
		w.frequency = build(nameFrequency, frequencyItems(w.options.FrequencyOptions), plain)
	}
	w.period = build(namePeriod, periodItems(w.options.CustomValues), plain)
	w.minute = build(nameMinute, minuteItems(), w.options.Minute)
	w.timeMinute = build(nameTimeMinute, minuteItems(), w.options.TimeMinute)
	w.timeHour = build(nameTimeHour, hourItems(), w.options.TimeHour)
	w.dayOfMonth = build(nameDayOfMonth, dayOfMonthItems(), w.options.DayOfMonth)
	w.month = build(nameMonth, monthItems(), w.options.Month)
	w.dayOfWeek = build(nameDayOfWeek, dayOfWeekItems(), w.options.DayOfWeek)
	return errors.Join(errs...)
}

// OnChange registers a handler that runs after every value mutation.
func (w *Widget) OnChange(handler ChangeFunc) {
	w.handlers = append(w.handlers, handler)
}

// SavingEnabled reports whether the widget has somewhere to save to.
func (w *Widget) SavingEnabled() bool {
	return w.submitter != nil
}

// Changed reports whether the shown value differs from the last saved
// value. Always false while saving is disabled.
func (w *Widget) Changed() bool {
	return w.changed
}

// Busy reports whether a save is in flight.
func (w *Widget) Busy() bool {
	return w.busy
}

// Notice returns the failure notice being shown, if any.
func (w *Widget) Notice() (tui.Notice, bool) {
	if w.notice == nil {
		return tui.Notice{}, false
	}
	return *w.notice, true
}

// SavedValue returns the last value known to be saved.
func (w *Widget) SavedValue() string {
	return w.base
}

// Category returns the selected period. ok is false while a custom
// value is selected.
func (w *Widget) Category() (category cron.Category, ok bool) {
	if _, custom := w.customValue(); custom {
		return "", false
	}
	return cron.Category(w.period.Value()), true
}

// Frequency returns the selected multi-frequency count, 1 when
// multi-frequency is off.
func (w *Widget) Frequency() int {
	if w.frequency == nil {
		return 1
	}
	count, err := strconv.Atoi(w.frequency.Value())
	if err != nil || count < 1 {
		return 1
	}
	return count
}

// Value returns the expression the controls currently show. While a
// custom period is selected, it returns that custom value verbatim.
func (w *Widget) Value() string {
	if value, ok := w.customValue(); ok {
		return value
	}
	category := cron.Category(w.period.Value())
	var values cron.Values
	for _, field := range cron.Fields() {
		selects := w.fieldSelects(category, field)
		selection := make(cron.Selection, 0, len(selects))
		for _, selectBox := range selects {
			if value, err := strconv.Atoi(selectBox.Value()); err == nil {
				selection = append(selection, value)
			}
		}
		values.Set(field, selection)
	}
	return cron.FromUIState(category, values)
}

// SetValue classifies text and shows it. On error nothing changes: the
// error is a *cron.SyntaxError, *cron.RangeError, or
// *cron.UnsupportedFormatError.
func (w *Widget) SetValue(text string) error {
	category, expression, err := w.classify(text)
	if err != nil {
		return err
	}
	w.hideDialogs()
	w.apply(category, expression)
	w.notifyChange()
	return nil
}

// classify parses text with the widget's grammar. With multi-frequency
// on, a list in the frequency field must have a length the frequency
// select offers.
func (w *Widget) classify(text string) (cron.Category, cron.Expression, error) {
	category, expression, err := w.grammar.Classify(text)
	if err != nil {
		return "", cron.Expression{}, err
	}
	field, ok := category.FrequencyField()
	if !ok {
		return category, expression, nil
	}
	count := len(expression.Field(field))
	if count <= 1 {
		return category, expression, nil
	}
	for _, frequency := range w.options.FrequencyOptions {
		if frequency.Count == count {
			return category, expression, nil
		}
	}
	return "", cron.Expression{}, &cron.UnsupportedFormatError{
		Expression: expression.String(),
		Shape:      expression.Shape(),
		Reason:     fmt.Sprintf("no frequency option lists %d values in the %s field", count, field),
	}
}

// apply shows a classified expression. A list in the frequency field
// sets the frequency count to its length; a single value resets it to
// one.
func (w *Widget) apply(category cron.Category, expression cron.Expression) {
	w.period.SetValue(string(category))
	values := cron.ToFields(category, expression)

	count := 1
	if field, ok := category.FrequencyField(); ok {
		count = max(count, len(values.Get(field)))
	}
	if w.frequency != nil {
		w.frequency.SetValue(strconv.Itoa(count))
	}
	w.rebuildClones(category, count)

	for _, field := range cron.Fields() {
		selection := values.Get(field)
		for index, selectBox := range w.fieldSelects(category, field) {
			if index < len(selection) {
				selectBox.SetValue(strconv.Itoa(selection[index]))
			}
		}
	}
	w.ensureFocus()
}

func (w *Widget) customValue() (string, bool) {
	value, ok := strings.CutPrefix(w.period.Value(), customPrefix)
	if !ok {
		return "", false
	}
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 || index >= len(w.options.CustomValues) {
		return "", false
	}
	return w.options.CustomValues[index].Value, true
}

// primarySelect returns the select that edits field for category. The
// minute field is edited by the minutes-past-the-hour select in the
// hour category and by the time select everywhere else.
func (w *Widget) primarySelect(category cron.Category, field cron.Field) *gentleselect.Select {
	switch field {
	case cron.Minute:
		if category == cron.CategoryHour {
			return w.minute
		}
		return w.timeMinute
	case cron.Hour:
		return w.timeHour
	case cron.DayOfMonth:
		return w.dayOfMonth
	case cron.Month:
		return w.month
	case cron.DayOfWeek:
		return w.dayOfWeek
	}
	return nil
}

// fieldSelects returns the primary select for field followed by its
// frequency clones, if field is the category's frequency field.
func (w *Widget) fieldSelects(category cron.Category, field cron.Field) []*gentleselect.Select {
	primary := w.primarySelect(category, field)
	if primary == nil {
		return nil
	}
	if frequencyField, ok := category.FrequencyField(); ok && frequencyField == field {
		return append([]*gentleselect.Select{primary}, w.clones...)
	}
	return []*gentleselect.Select{primary}
}

// rebuildClones replaces the frequency clones with count-1 copies of
// the category's frequency select. Categories without a frequency
// field get none.
func (w *Widget) rebuildClones(category cron.Category, count int) {
	w.clones = nil
	field, ok := category.FrequencyField()
	if !ok {
		return
	}
	primary := w.primarySelect(category, field)
	for index := 2; index <= count; index++ {
		w.clones = append(w.clones, primary.Clone(primary.Name+"#"+strconv.Itoa(index)))
	}
}

// periodChanged runs after the user picks a period: the groups for the
// new category show and the frequency clones are rebuilt for it.
func (w *Widget) periodChanged() {
	w.rebuildClones(cron.Category(w.period.Value()), w.Frequency())
	w.ensureFocus()
}

// frequencyChanged runs after the user picks a frequency count.
func (w *Widget) frequencyChanged() {
	w.rebuildClones(cron.Category(w.period.Value()), w.Frequency())
	w.ensureFocus()
}

// notifyChange updates the changed flag and runs the change handlers.
func (w *Widget) notifyChange() {
	value := w.Value()
	if w.submitter != nil {
		w.changed = value != w.base
	}
	w.logger.Debug("cron value changed", "value", value, "changed", w.changed)
	for _, handler := range w.handlers {
		handler(w)
	}
}

// selects returns every select the widget owns, clones included.
func (w *Widget) selects() []*gentleselect.Select {
	all := []*gentleselect.Select{
		w.period, w.minute, w.timeMinute, w.timeHour,
		w.dayOfMonth, w.month, w.dayOfWeek,
	}
	if w.frequency != nil {
		all = append(all, w.frequency)
	}
	return append(all, w.clones...)
}

func (w *Widget) selectNamed(name string) *gentleselect.Select {
	for _, selectBox := range w.selects() {
		if selectBox.Name == name {
			return selectBox
		}
	}
	return nil
}

// openSelect returns the select whose dialog accepts input, if any.
func (w *Widget) openSelect() *gentleselect.Select {
	for _, selectBox := range w.selects() {
		if selectBox.IsOpen() {
			return selectBox
		}
	}
	return nil
}

func (w *Widget) hideDialogs() {
	for _, selectBox := range w.selects() {
		selectBox.Hide()
	}
}
