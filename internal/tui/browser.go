// Package tui implements a read-only terminal browser over a completed
// assembly run: the Pass 2 listing, the symbol table, and the object
// program's Text/Modification records. Navigation only; nothing here
// steps or mutates program state.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dgrest/sicxe-asm/internal/assembler"
	"github.com/dgrest/sicxe-asm/internal/parser"
	"github.com/dgrest/sicxe-asm/internal/record"
)

// Browser is the text user interface for browsing an assembled program.
type Browser struct {
	App   *tview.Application
	Pages *tview.Pages

	MainLayout *tview.Flex
	LeftPanel  *tview.Flex
	RightPanel *tview.Flex

	ListingView  *tview.TextView
	SymbolView   *tview.TextView
	RecordView   *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField

	listing       []assembler.Listing2Entry
	symbols       *parser.SymbolTable
	textRecords   []record.TextRecord
	mods          []record.Modification
	meta          assembler.Metadata
	entryPoint    uint32
	cursorAddr    uint32
}

// NewBrowser builds a Browser over one completed Pass 1/Pass 2 run.
func NewBrowser(p1 *assembler.Pass1Result, p2 *assembler.Pass2Result) *Browser {
	b := &Browser{
		App:         tview.NewApplication(),
		listing:     p2.Listing,
		symbols:     p1.Symbols,
		textRecords: p2.TextRecords,
		mods:        p2.Modifications,
		meta:        p1.Meta,
		entryPoint:  p2.EntryPoint,
		cursorAddr:  p1.Meta.StartAddr,
	}

	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()

	return b
}

func (b *Browser) initializeViews() {
	b.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Listing ")

	b.SymbolView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolView.SetBorder(true).SetTitle(" Symbol Table ")

	b.RecordView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.RecordView.SetBorder(true).SetTitle(" Object Program ")

	b.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	b.OutputView.SetBorder(true).SetTitle(" Messages ")

	b.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	b.CommandInput.SetBorder(true).SetTitle(" Command (goto/find/help/quit) ")
	b.CommandInput.SetDoneFunc(b.handleCommand)
}

func (b *Browser) buildLayout() {
	b.LeftPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.ListingView, 0, 3, false).
		AddItem(b.RecordView, 0, 2, false)

	b.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.SymbolView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.LeftPanel, 0, 2, false).
		AddItem(b.RightPanel, 0, 1, false)

	b.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(b.OutputView, 6, 0, false).
		AddItem(b.CommandInput, 3, 0, true)

	b.Pages = tview.NewPages().
		AddPage("main", b.MainLayout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			b.executeCommand("help")
			return nil
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			b.RefreshAll()
			return nil
		}
		return event
	})
}

func (b *Browser) handleCommand(key tcell.Key) {
	if key == tcell.KeyEnter {
		cmd := b.CommandInput.GetText()
		if cmd != "" {
			b.executeCommand(cmd)
			b.CommandInput.SetText("")
		}
	}
}

// executeCommand runs one browser command: "goto <symbol|hex-addr>" moves
// the listing cursor, "find <text>" searches mnemonics and operands,
// "help" prints the command list, "quit" exits.
func (b *Browser) executeCommand(cmd string) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "help":
		b.WriteOutput("[yellow]Commands:[white] goto <symbol|addr>, find <text>, quit\n")

	case "quit", "exit":
		b.App.Stop()

	case "goto":
		if len(fields) < 2 {
			b.WriteOutput("[red]usage:[white] goto <symbol|addr>\n")
			break
		}
		b.gotoTarget(fields[1])

	case "find":
		if len(fields) < 2 {
			b.WriteOutput("[red]usage:[white] find <text>\n")
			break
		}
		b.find(strings.Join(fields[1:], " "))

	default:
		b.WriteOutput(fmt.Sprintf("[red]unknown command:[white] %s\n", fields[0]))
	}

	b.RefreshAll()
}

func (b *Browser) gotoTarget(target string) {
	if addr, ok := b.symbols.Lookup(target); ok {
		b.cursorAddr = addr
		b.WriteOutput(fmt.Sprintf("[green]jumped to[white] %s (%06X)\n", target, addr))
		return
	}
	if v, ok := parser.ParseHex(target); ok {
		b.cursorAddr = uint32(v)
		b.WriteOutput(fmt.Sprintf("[green]jumped to[white] %06X\n", b.cursorAddr))
		return
	}
	b.WriteOutput(fmt.Sprintf("[red]unknown symbol or address:[white] %s\n", target))
}

func (b *Browser) find(text string) {
	upper := strings.ToUpper(text)
	for _, entry := range b.listing {
		if entry.Line == nil {
			continue
		}
		if strings.Contains(entry.Line.Mnemonic, upper) || strings.Contains(strings.ToUpper(entry.Line.Operand), upper) {
			b.cursorAddr = entry.Addr
			b.WriteOutput(fmt.Sprintf("[green]found[white] %06X: %s %s\n", entry.Addr, entry.Line.Mnemonic, entry.Line.Operand))
			return
		}
	}
	b.WriteOutput(fmt.Sprintf("[red]not found:[white] %s\n", text))
}

// WriteOutput appends a line to the messages view.
func (b *Browser) WriteOutput(text string) {
	_, _ = b.OutputView.Write([]byte(text))
	b.OutputView.ScrollToEnd()
}

// RefreshAll redraws all view panels from the browser's current state.
func (b *Browser) RefreshAll() {
	b.updateListingView()
	b.updateSymbolView()
	b.updateRecordView()
	b.App.Draw()
}

func (b *Browser) updateListingView() {
	b.ListingView.Clear()

	var lines []string
	for _, entry := range b.listing {
		marker := "  "
		color := "white"
		if entry.Addr == b.cursorAddr {
			marker = "->"
			color = "yellow"
		}

		objectText := ""
		if len(entry.Object) > 0 {
			objectText = fmt.Sprintf("%X", entry.Object)
		}

		label := ""
		mnemonic := ""
		operand := ""
		if entry.Line != nil {
			label = entry.Line.Label
			if entry.Line.Extended {
				mnemonic = "+" + entry.Line.Mnemonic
			} else {
				mnemonic = entry.Line.Mnemonic
			}
			operand = entry.Line.Operand
		}

		line := fmt.Sprintf("[%s]%s %06X  %-22s %-8s %-8s %s[white]", color, marker, entry.Addr, objectText, label, mnemonic, operand)
		lines = append(lines, line)
	}

	b.ListingView.SetText(strings.Join(lines, "\n"))
}

func (b *Browser) updateSymbolView() {
	b.SymbolView.Clear()

	var lines []string
	lines = append(lines, fmt.Sprintf("[yellow]%s[white]  start=%06X  len=%06X", b.meta.Name, b.meta.StartAddr, b.meta.Length))
	lines = append(lines, "")

	for _, name := range b.symbols.Names() {
		addr, _ := b.symbols.Lookup(name)
		color := "white"
		if addr == b.cursorAddr {
			color = "yellow"
		}
		lines = append(lines, fmt.Sprintf("[%s]%-10s %06X[white]", color, name, addr))
	}

	b.SymbolView.SetText(strings.Join(lines, "\n"))
}

func (b *Browser) updateRecordView() {
	b.RecordView.Clear()

	var lines []string
	lines = append(lines, record.FormatHeader(b.meta.Name, b.meta.StartAddr, b.meta.Length))
	for _, r := range b.textRecords {
		lines = append(lines, r.Format())
	}
	for _, m := range b.mods {
		lines = append(lines, m.Format())
	}
	lines = append(lines, record.FormatEnd(b.entryPoint))

	b.RecordView.SetText(strings.Join(lines, "\n"))
}

// Run starts the browser application.
func (b *Browser) Run() error {
	b.RefreshAll()
	b.WriteOutput("[green]sicasm listing browser[white]\n")
	b.WriteOutput("Press F1 for help, Ctrl+C to quit\n\n")

	return b.App.SetRoot(b.Pages, true).SetFocus(b.CommandInput).Run()
}

// Stop stops the browser application.
func (b *Browser) Stop() {
	b.App.Stop()
}
