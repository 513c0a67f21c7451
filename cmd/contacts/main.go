// Package main provides contacts, a demo single-document form editor built
// on pkg/bind and pkg/sdi: a tview form bound two-way to a contact document,
// with Ctrl-N/O/S lifecycle keys and an unsaved-changes guard on quit.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/formdoc/internal/prompt"
	"github.com/calvinalkan/formdoc/pkg/bind"
	"github.com/calvinalkan/formdoc/pkg/sdi"
	"github.com/calvinalkan/formdoc/pkg/tvbind"
)

// contact is the demo document. Replaced wholesale on new/open.
type contact struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Age        int       `json:"age"`
	Height     float64   `json:"height_m"`
	Birthday   time.Time `json:"birthday"`
	Subscribed bool      `json:"subscribed"`
	Tier       string    `json:"tier"`
	Country    string    `json:"country"`
}

const dateLayout = time.DateOnly

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "", "document file to open on startup")
	flag.Parse()

	app := tview.NewApplication()

	nameField := tview.NewInputField().SetLabel("Name").SetFieldWidth(40)
	emailField := tview.NewInputField().SetLabel("Email").SetFieldWidth(40)
	ageField := tview.NewInputField().SetLabel("Age").SetFieldWidth(6)
	heightField := tview.NewInputField().SetLabel("Height (m)").SetFieldWidth(8)
	birthdayField := tview.NewInputField().SetLabel("Birthday").SetFieldWidth(12).
		SetPlaceholder(dateLayout)
	subscribedBox := tview.NewCheckbox().SetLabel("Subscribed")
	tierDrop := tview.NewDropDown().SetLabel("Tier")
	countryDrop := tview.NewDropDown().SetLabel("Country")

	mgr, err := sdi.NewManager(sdi.Config[contact]{
		NewDocument: func() *contact { return &contact{Tier: "free"} },
		Dialogs:     &prompt.Terminal{Suspend: func(fn func()) { app.Suspend(fn) }},
		Filter:      sdi.FileFilter{Description: "Contact files", Extension: ".contact.json"},
	})
	if err != nil {
		return err
	}

	bindErr := bindControls(mgr.Binder(),
		nameField, emailField, ageField, heightField, birthdayField,
		subscribedBox, tierDrop, countryDrop)
	if bindErr != nil {
		return bindErr
	}

	form := tview.NewForm().
		AddFormItem(nameField).
		AddFormItem(emailField).
		AddFormItem(ageField).
		AddFormItem(heightField).
		AddFormItem(birthdayField).
		AddFormItem(subscribedBox).
		AddFormItem(tierDrop).
		AddFormItem(countryDrop)
	form.SetBorder(true)

	status := tview.NewTextView()
	status.SetText("Ctrl-N new  Ctrl-O open  Ctrl-S save  Ctrl-Q quit")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(status, 1, 0, false)

	title := func() string {
		name := mgr.FileName()
		if name == "" {
			name = "Untitled"
		}

		if mgr.IsDirty() {
			name += " *"
		}

		return " " + name + " "
	}

	mgr.OnFileNameChanged(func(string) { form.SetTitle(title()) })
	mgr.Binder().OnDirtyChanged(func(bool) { form.SetTitle(title()) })

	report := func(verb string, err error) {
		switch {
		case err == nil:
			status.SetText(verb + " ok")
		case errors.Is(err, sdi.ErrCancelled):
			status.SetText(verb + " cancelled")
		default:
			status.SetText("error: " + err.Error())
		}

		form.SetTitle(title())
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlN:
			report("new", mgr.New())
			return nil
		case tcell.KeyCtrlO:
			report("open", mgr.Open())
			return nil
		case tcell.KeyCtrlS:
			report("save", mgr.Save())
			return nil
		case tcell.KeyCtrlQ, tcell.KeyCtrlC:
			proceed, closeErr := mgr.CloseRequested()
			if closeErr != nil {
				report("close", closeErr)
				return nil
			}

			if proceed {
				app.Stop()
			}

			return nil
		default:
			return event
		}
	})

	if *file != "" {
		openErr := mgr.OpenFile(*file)
		if openErr != nil {
			return openErr
		}
	} else {
		loadErr := mgr.Binder().LoadValues()
		if loadErr != nil {
			return loadErr
		}
	}

	form.SetTitle(title())

	return app.SetRoot(layout, true).Run()
}

// bindControls registers every form widget against its document property.
func bindControls(
	b *bind.Binder[contact],
	nameField, emailField, ageField, heightField, birthdayField *tview.InputField,
	subscribedBox *tview.Checkbox,
	tierDrop, countryDrop *tview.DropDown,
) error {
	// Email and Age go through the name-based resolver; the rest use explicit
	// accessor pairs.
	emailAcc, err := bind.FieldByName[contact, string]("Email")
	if err != nil {
		return err
	}

	ageAcc, err := bind.FieldByName[contact, int]("Age")
	if err != nil {
		return err
	}

	tiers := []bind.Item[string]{
		{Value: "free", Label: "Free"},
		{Value: "pro", Label: "Professional"},
		{Value: "ent", Label: "Enterprise"},
	}

	countries := []bind.KeyedItem[string]{
		{Key: "DE", Label: "Germany"},
		{Key: "FR", Label: "France"},
		{Key: "JP", Label: "Japan"},
		{Key: "US", Label: "United States"},
	}

	return errors.Join(
		bind.Add(b, tvbind.Input(nameField), bind.Field(
			func(c *contact) string { return c.Name },
			func(c *contact, v string) { c.Name = v },
		)),
		bind.Add(b, tvbind.Input(emailField), emailAcc),
		bind.Add(b, tvbind.Int(ageField), ageAcc),
		bind.Add(b, tvbind.Float(heightField), bind.Field(
			func(c *contact) float64 { return c.Height },
			func(c *contact, v float64) { c.Height = v },
		)),
		bind.Add(b, tvbind.Date(birthdayField, dateLayout), bind.Field(
			func(c *contact) time.Time { return c.Birthday },
			func(c *contact, v time.Time) { c.Birthday = v },
		)),
		bind.Add(b, tvbind.Check(subscribedBox), bind.Field(
			func(c *contact) bool { return c.Subscribed },
			func(c *contact, v bool) { c.Subscribed = v },
		)),
		bind.AddSelect(b, tvbind.Select(tierDrop), bind.Field(
			func(c *contact) string { return c.Tier },
			func(c *contact, v string) { c.Tier = v },
		), tiers),
		bind.AddKeyed(b, tvbind.Select(countryDrop), bind.Field(
			func(c *contact) string { return c.Country },
			func(c *contact, v string) { c.Country = v },
		), countries),
	)
}
