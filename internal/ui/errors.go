package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"csr/internal/config"
	"csr/internal/domain"
	"csr/internal/storage"
)

// FailureViewer displays step failures in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the run's failures in an interactive TUI
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Failures) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	// Track resolved failures (by index) - loaded from the saved run
	resolved := make(map[int]bool)
	for i, failure := range results.Failures {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	// Persist resolved status back into the saved run
	saveResolvedStatus := func() error {
		for i := range results.Failures {
			results.Failures[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		failure := results.Failures[index]
		title := failure.Message
		if failure.Code != "" {
			title = failure.Code + " " + title
		}
		title = firstLine(title)
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, title)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, title)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range results.Failures {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (shows step and location info)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Failures {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := countUnresolved()
		headerText := fmt.Sprintf(" Suite %s failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			results.Meta.Suite, len(results.Failures), unresolved)
		headerView.SetText(headerText)
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Failures) {
			failure := results.Failures[index]
			statsView.SetText(fv.formatFailureStats(failure, index+1))
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Failures) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a step failure for display using tview color tags
func (fv *FailureViewer) formatFailureDetails(failure domain.StepFailure) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Step: %s[white]\n\n", failure.StepName)

	if failure.FilePath != "" {
		fmt.Fprintf(w, "[cyan]File: %s[white]\n", failure.FilePath)
	}
	if failure.Line > 0 {
		loc := fmt.Sprintf("%s:%d", failure.FilePath, failure.Line)
		if failure.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, failure.Column)
		}
		fmt.Fprintf(w, "[yellow]Location: %s[white]\n", loc)
	}
	if failure.Code != "" {
		fmt.Fprintf(w, "[yellow]Code: %s[white]\n", failure.Code)
	}
	fmt.Fprintf(w, "\n")

	if failure.Message != "" {
		fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n", failure.Message)
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats formats the stats header for a step failure
func (fv *FailureViewer) formatFailureStats(failure domain.StepFailure, number int) string {
	var builder strings.Builder

	path := failure.FilePath
	if path == "" {
		path = failure.StepName
	}

	code := failure.Code
	if code == "" {
		code = fmt.Sprintf("failure %d", number)
	}

	statsLine := fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]::[yellow]%s[white]", path, code)
	builder.WriteString(statsLine)
	builder.WriteString("\n")

	return builder.String()
}
