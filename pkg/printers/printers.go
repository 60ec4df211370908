package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/document"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Entry prints one day's journal entry under its title.
func (pp *PrettyPrint) Entry(doc *document.Document) {
	pp.Title(doc.Title)
	if strings.TrimSpace(doc.Text) == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" empty\n\n")
		return
	}
	_, _ = fmt.Fprintln(color.Output, doc.Text)
	if doc.Modified > 0 {
		f := color.New(color.Faint)
		_, _ = f.Printf("modified %s\n", time.UnixMilli(doc.Modified).Format(time.RFC822))
	}
	fmt.Println("")
}

// Titles prints search hits in the order given.
func (pp *PrettyPrint) Titles(titles []string) {
	if len(titles) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, title := range titles {
		tbl.AddRow(fmt.Sprintf("%d", i+1), title)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
}
