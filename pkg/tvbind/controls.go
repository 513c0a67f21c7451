package tvbind

import (
	"strconv"
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/calvinalkan/formdoc/pkg/bind"
)

// Input adapts a tview input field as a string control.
func Input(field *tview.InputField) bind.Control[string] {
	return &inputField{field: field}
}

type inputField struct {
	field *tview.InputField
}

func (c *inputField) Value() string { return c.field.GetText() }

func (c *inputField) SetValue(v string) { c.field.SetText(v) }

func (c *inputField) Reset() { c.field.SetText("") }

func (c *inputField) OnChanged(fn func()) {
	c.field.SetChangedFunc(func(string) { fn() })
}

// Int adapts a tview input field as an integer control. Unparsable text
// reads as 0.
func Int(field *tview.InputField) bind.Control[int] {
	return &intField{field: field}
}

type intField struct {
	field *tview.InputField
}

func (c *intField) Value() int {
	n, _ := strconv.Atoi(strings.TrimSpace(c.field.GetText()))
	return n
}

func (c *intField) SetValue(v int) { c.field.SetText(strconv.Itoa(v)) }

func (c *intField) Reset() { c.field.SetText("") }

func (c *intField) OnChanged(fn func()) {
	c.field.SetChangedFunc(func(string) { fn() })
}

// Float adapts a tview input field as a float64 control. Unparsable text
// reads as 0.
func Float(field *tview.InputField) bind.Control[float64] {
	return &floatField{field: field}
}

type floatField struct {
	field *tview.InputField
}

func (c *floatField) Value() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(c.field.GetText()), 64)
	return f
}

func (c *floatField) SetValue(v float64) {
	c.field.SetText(strconv.FormatFloat(v, 'f', -1, 64))
}

func (c *floatField) Reset() { c.field.SetText("") }

func (c *floatField) OnChanged(fn func()) {
	c.field.SetChangedFunc(func(string) { fn() })
}

// Date adapts a tview input field as a time.Time control using the given
// layout (e.g. time.DateOnly). Unparsable text reads as the zero time; the
// zero time displays as empty text.
func Date(field *tview.InputField, layout string) bind.Control[time.Time] {
	return &dateField{field: field, layout: layout}
}

type dateField struct {
	field  *tview.InputField
	layout string
}

func (c *dateField) Value() time.Time {
	t, _ := time.Parse(c.layout, strings.TrimSpace(c.field.GetText()))
	return t
}

func (c *dateField) SetValue(v time.Time) {
	if v.IsZero() {
		c.field.SetText("")
		return
	}

	c.field.SetText(v.Format(c.layout))
}

func (c *dateField) Reset() { c.field.SetText("") }

func (c *dateField) OnChanged(fn func()) {
	c.field.SetChangedFunc(func(string) { fn() })
}

// Check adapts a tview checkbox as a boolean control.
func Check(box *tview.Checkbox) bind.Control[bool] {
	return &checkbox{box: box}
}

type checkbox struct {
	box *tview.Checkbox
}

func (c *checkbox) Value() bool { return c.box.IsChecked() }

func (c *checkbox) SetValue(v bool) { c.box.SetChecked(v) }

func (c *checkbox) Reset() { c.box.SetChecked(false) }

func (c *checkbox) OnChanged(fn func()) {
	c.box.SetChangedFunc(func(bool) { fn() })
}

// Select adapts a tview drop-down as a selection control for AddSelect and
// AddKeyed.
func Select(dropDown *tview.DropDown) bind.Selector {
	return &dropdown{dd: dropDown}
}

type dropdown struct {
	dd *tview.DropDown
}

func (c *dropdown) SetOptions(labels []string) {
	c.dd.SetOptions(labels, nil)
}

func (c *dropdown) Select(index int) {
	c.dd.SetCurrentOption(index)
}

func (c *dropdown) SelectedIndex() int {
	index, _ := c.dd.GetCurrentOption()
	return index
}

func (c *dropdown) OnChanged(fn func()) {
	c.dd.SetSelectedFunc(func(string, int) { fn() })
}
