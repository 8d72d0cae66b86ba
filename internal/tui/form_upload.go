// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/digiplay/dineo/models"
)

var (
	errInvalidPrice    = errors.New("price must be a non-negative whole number")
	errInvalidDiscount = errors.New("discount must be a whole number from 0 to 100")
)

const (
	uploadTitle = iota
	uploadDescription
	uploadCategory
	uploadPrice
	uploadDiscount
	uploadFile
)

// uploadFormModel puts a content type selector above the text fields. While
// typeFocused is set the selector owns left/right.
type uploadFormModel struct {
	form        formModel
	typeIdx     int
	typeFocused bool
}

// newUploadForm preselects the content type listed by section.
func newUploadForm(section models.Section) uploadFormModel {
	m := uploadFormModel{
		form: newFormModel("UPLOAD",
			textField("Title"),
			textField("Description"),
			textField("Category"),
			textField("Price, ₽"),
			textField("Discount, %"),
			textField("File path"),
		),
	}
	m.form.fields[uploadFile].input.CharLimit = 4096

	if t, ok := section.ContentType(); ok {
		m.typeIdx = max(slices.Index(models.ContentTypes, t), 0)
	}
	return m
}

func (m *uploadFormModel) contentType() models.ContentType {
	return models.ContentTypes[m.typeIdx]
}

func (m *uploadFormModel) focusNext() {
	switch {
	case m.typeFocused:
		m.typeFocused = false
		m.form.fields[0].input.Focus()
		m.form.focus = 0
	case m.form.focus == len(m.form.fields)-1:
		m.form.fields[m.form.focus].input.Blur()
		m.typeFocused = true
	default:
		m.form.focusNext()
	}
}

func (m *uploadFormModel) focusPrev() {
	switch {
	case m.typeFocused:
		m.typeFocused = false
		m.form.focus = len(m.form.fields) - 1
		m.form.fields[m.form.focus].input.Focus()
	case m.form.focus == 0:
		m.form.fields[0].input.Blur()
		m.typeFocused = true
	default:
		m.form.focusPrev()
	}
}

func (m *uploadFormModel) cycleType(step int) {
	n := len(models.ContentTypes)
	m.typeIdx = (m.typeIdx + step + n) % n
}

func (m *uploadFormModel) update(msg tea.Msg) tea.Cmd {
	if m.typeFocused {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "left", "h":
				m.cycleType(-1)
			case "right", "l", " ":
				m.cycleType(1)
			}
		}
		return nil
	}
	return m.form.updateInput(msg)
}

// input returns the form values without the file contents and the path of
// the file to read.
func (m *uploadFormModel) input() (models.UploadInput, string, error) {
	price, err := parseWhole(m.form.value(uploadPrice))
	if err != nil || price < 0 {
		return models.UploadInput{}, "", errInvalidPrice
	}

	discount, err := parseWhole(m.form.value(uploadDiscount))
	if err != nil || discount < 0 || discount > 100 {
		return models.UploadInput{}, "", errInvalidDiscount
	}

	in := models.UploadInput{
		Type:        m.contentType(),
		Title:       strings.TrimSpace(m.form.value(uploadTitle)),
		Description: strings.TrimSpace(m.form.value(uploadDescription)),
		Category:    strings.TrimSpace(m.form.value(uploadCategory)),
		Price:       price,
		Discount:    int(discount),
	}
	return in, strings.TrimSpace(m.form.value(uploadFile)), nil
}

// parseWhole treats an empty value as zero.
func parseWhole(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func (m *uploadFormModel) View() string {
	var b strings.Builder

	cursor := "  "
	if m.typeFocused {
		cursor = focusedStyle.Render("> ")
	}
	b.WriteString(cursor)
	b.WriteString("Type  ")
	for i, t := range models.ContentTypes {
		label := string(t)
		if i == m.typeIdx {
			label = activeSectionStyle.Render("<" + label + ">")
		}
		b.WriteString(" ")
		b.WriteString(label)
	}
	b.WriteString("\n\n")
	b.WriteString(m.form.body())

	return renderPage(fmt.Sprintf("%s %s", m.form.title, typeIcon(m.contentType())), b.String(),
		"esc: back │ tab: next field │ ←/→: type │ enter: upload")
}
