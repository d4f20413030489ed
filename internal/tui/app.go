// Package tui hosts the listings browser in the terminal: a filter bar, a map
// or list of the current page, a details panel and pagination controls.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/widget"
	"github.com/rivo/tview"
)

const mainPage = "main"

// Config holds what the browser needs to start.
type Config struct {
	Loader PageLoader
	// Request is the first navigation, built from the command line.
	Request nav.Request
	// Source is shown in the header, e.g. the database path.
	Source string
}

// App is the TUI application.
type App struct {
	*tview.Application
	config     *Config
	styles     *Styles
	root       *tview.Pages
	pageStack  *PageStack
	header     *tview.TextView
	crumbs     *tview.TextView
	statusBar  *tview.TextView
	flash      *tview.TextView
	globalKeys *KeyActions
	pointer    *widget.PointerSource
	browser    *BrowserView
	ctx        context.Context
	cancel     context.CancelFunc
	flashMx    sync.Mutex
}

// NewApp creates the application and its listings page.
func NewApp(ctx context.Context, config *Config) *App {
	ctx, cancel := context.WithCancel(ctx)

	app := &App{
		Application: tview.NewApplication(),
		config:      config,
		styles:      DefaultStyles(),
		root:        tview.NewPages(),
		globalKeys:  NewKeyActions(),
		pointer:     widget.NewPointerSource(),
		ctx:         ctx,
		cancel:      cancel,
	}

	app.EnableMouse(true)
	app.pageStack = NewPageStack(ctx, app.setCrumbs)

	app.setupGlobalKeys()
	app.buildUI()

	app.browser = NewBrowserView(app, config.Loader)

	return app
}

func (a *App) setupGlobalKeys() {
	a.globalKeys.Add(Key(tcell.KeyCtrlC), KeyAction{
		Description: "Quit",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.Stop()
			return nil
		},
		Visible: true,
	})

	a.globalKeys.Add(Rune('?'), KeyAction{
		Description: "Help",
		Action: func(*tcell.EventKey) *tcell.EventKey {
			a.ShowHelp()
			return nil
		},
		Visible: true,
	})

	a.globalKeys.Add(Key(tcell.KeyEscape), KeyAction{
		Description: "Back",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			if a.pageStack.Depth() > 1 {
				a.pageStack.Pop()
				return nil
			}

			return evt
		},
		Visible: true,
	})
}

func (a *App) buildUI() {
	a.header = tview.NewTextView().SetDynamicColors(true)
	a.header.SetBackgroundColor(a.styles.BgColor)

	source := ""
	if a.config.Source != "" {
		source = " [gray]" + tview.Escape(a.config.Source) + "[-]"
	}

	a.header.SetText("[aqua::b]plaza[-::-]" + source)

	a.crumbs = tview.NewTextView().SetDynamicColors(true)
	a.crumbs.SetBackgroundColor(a.styles.BgColor)
	a.crumbs.SetTextColor(a.styles.CrumbFg)

	a.statusBar = tview.NewTextView().SetDynamicColors(true)
	a.statusBar.SetBackgroundColor(a.styles.BgColor)

	a.flash = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	a.flash.SetBackgroundColor(a.styles.BgColor)

	main := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.pageStack.Pages(), 0, 1, true).
		AddItem(a.statusBar, 1, 0, false).
		AddItem(a.flash, 1, 0, false)

	a.root.AddPage(mainPage, main, true, true)

	a.SetRoot(a.root, true)
	a.SetInputCapture(a.handleGlobalKeys)
	a.SetMouseCapture(a.publishClicks)
}

// publishClicks feeds every click to the pointer source before the clicked
// primitive sees it, so open dropdowns can close on outside clicks.
func (a *App) publishClicks(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if action == tview.MouseLeftClick {
		x, y := event.Position()
		a.pointer.Publish(widget.PointerEvent{X: x, Y: y})
	}

	return event, action
}

func (a *App) handleGlobalKeys(event *tcell.EventKey) *tcell.EventKey {
	// Text fields get every rune.
	if _, typing := a.GetFocus().(*tview.InputField); typing && event.Key() == tcell.KeyRune {
		return event
	}

	if event = a.globalKeys.Handle(event); event == nil {
		return nil
	}

	comp := a.pageStack.Top()
	if comp == nil {
		return event
	}

	if event = comp.Actions().Handle(event); event == nil {
		return nil
	}

	return comp.HandleKey(event)
}

// Run loads the first page and runs the event loop.
func (a *App) Run() error {
	if err := a.browser.Open(a.ctx, a.config.Request); err != nil {
		return err
	}

	a.pageStack.Push(a.browser)
	a.updateStatusBar()

	go func() {
		<-a.ctx.Done()
		a.Application.Stop()
	}()

	return a.Application.Run()
}

// Stop stops the application.
func (a *App) Stop() {
	a.cancel()
	a.pageStack.Stop()
	a.browser.Unmount()
	a.Application.Stop()
}

// ShowOverlay displays p above everything at rect.
func (a *App) ShowOverlay(name string, p tview.Primitive, rect widget.Rect) {
	p.SetRect(rect.X, rect.Y, rect.Width, rect.Height)
	a.root.AddPage(name, p, false, true)
	a.root.SendToFront(name)
}

// HideOverlay removes an overlay added with ShowOverlay.
func (a *App) HideOverlay(name string) {
	if a.root.HasPage(name) {
		a.root.RemovePage(name)
	}
}

func (a *App) setCrumbs(crumbs []string) {
	if len(crumbs) == 0 {
		a.crumbs.SetText("")
		return
	}

	a.crumbs.SetText("[gray]plaza > " + strings.Join(crumbs, " > ") + "[-]")
	a.updateStatusBar()
}

func (a *App) updateStatusBar() {
	var hints []string

	comp := a.pageStack.Top()
	if comp != nil {
		hints = comp.Actions().Hints()
	}

	hints = append(hints, a.globalKeys.Hints()...)
	for i, h := range hints {
		hints[i] = tview.Escape(h)
	}

	if s, ok := comp.(interface{ Summary() string }); ok {
		hints = append(hints, "[gray]"+s.Summary()+"[-]")
	}

	a.statusBar.SetText(" " + strings.Join(hints, " "))
}

// Flash displays a message in the bottom line for a few seconds.
func (a *App) Flash(message string, isError bool) {
	a.flashMx.Lock()
	defer a.flashMx.Unlock()

	color := "green"
	if isError {
		color = "red"
	}

	a.flash.SetText(fmt.Sprintf("[%s::b] %s ", color, tview.Escape(message)))

	go func() {
		select {
		case <-a.ctx.Done():
			return
		case <-time.After(3 * time.Second):
			a.QueueUpdateDraw(func() {
				a.flash.SetText("")
			})
		}
	}()
}

// ShowHelp pushes the help page.
func (a *App) ShowHelp() {
	if top := a.pageStack.Top(); top != nil && top.Name() == helpName {
		return
	}

	logger.Log.Debugf("Showing help")
	a.pageStack.Push(NewHelpView(a))
}
