package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	openPlay   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "huddle",
		Short:        "Design football plays in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runEditor,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "play database, overrides the config file")
	rootCmd.Flags().StringVar(&openPlay, "play", "", "open a saved play")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved formations and plays",
		Args:  cobra.NoArgs,
		RunE:  runList,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "export <play> <file.png>",
		Short: "Render a saved play to PNG",
		Args:  cobra.ExactArgs(2),
		RunE:  runExport,
	})
	return rootCmd
}

func openEnvironment() (*Config, *Store, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if dbPath != "" {
		config.Database = dbPath
	}
	store, err := OpenStore(config.Database)
	if err != nil {
		return nil, nil, err
	}
	return config, store, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	config, store, err := openEnvironment()
	if err != nil {
		return err
	}
	defer store.Close()

	logger, closer, err := config.newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	session := NewSession(config.Field(), config.Rules(), config.Grid, config.Guides, logger)
	if openPlay != "" {
		play, err := store.GetPlay(cmd.Context(), openPlay)
		if err != nil {
			return err
		}
		session.Load(play.Entities)
		logger.Info("play loaded", "name", play.Name, "players", len(play.Entities.Players))
	}

	p := tea.NewProgram(
		initialModel(session, config, store, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	_, store, err := openEnvironment()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	formations, err := store.ListFormations(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Formations:")
	for _, f := range formations {
		fmt.Fprintf(out, "  %-24s %-8s %d players\n", f.Name, f.Type, len(f.Players))
	}

	plays, err := store.ListPlays(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Plays:")
	for _, p := range plays {
		fmt.Fprintf(out, "  %-24s %-8s %-24s %d routes\n", p.Name, p.Type, p.Formation, len(p.Entities.Routes))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	config, store, err := openEnvironment()
	if err != nil {
		return err
	}
	defer store.Close()

	play, err := store.GetPlay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := ExportPNG(args[1], config.Field(), config.Rules(), play.Entities); err != nil {
		return fmt.Errorf("export %s: %w", play.Name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", play.Name, args[1])
	return nil
}

const (
	toolbarRows = 1
	statusRows  = 1
)

type model struct {
	width           int
	height          int
	cursorX         int
	cursorY         int
	keyboardPressed bool
	mousePressed    bool
	session         *Session
	config          *Config
	store           *Store
	logger          *slog.Logger
	mode            Mode
	prompt          NamePrompt
	input           string
	formationName   string
	errorMessage    string
	successMessage  string
}

type saveResultMsg struct {
	message string
	err     error
}

func initialModel(session *Session, config *Config, store *Store, logger *slog.Logger) model {
	return model{
		session: session,
		config:  config,
		store:   store,
		logger:  logger,
		mode:    ModeNormal,
	}
}

func (m *model) surface() Surface {
	return newSurface(m.session.Constraints.Field(), m.width, m.height-toolbarRows-statusRows)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case saveResultMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.logger.Warn("save failed", "err", msg.err)
		} else {
			m.successMessage = msg.message
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.mode != ModeNormal {
		return
	}
	s := m.surface()
	row := msg.Y - toolbarRows
	inField := row >= 0 && row < s.rows && msg.X >= 0 && msg.X < s.cols
	col := clampInt(msg.X, 0, s.cols-1)
	row = clampInt(row, 0, s.rows-1)
	ev := PointerEvent{
		Point:     s.PointAt(col, row),
		Modifiers: Modifiers{Alt: msg.Alt, Ctrl: msg.Ctrl},
	}
	ctrl := m.session.Controller

	switch msg.Type {
	case tea.MouseLeft:
		if m.mousePressed {
			m.pointerMotion(ev, inField)
			return
		}
		if !inField {
			if msg.Y < toolbarRows {
				if tool, ok := toolAt(msg.X); ok {
					m.session.Tools.SetTool(tool)
				}
			}
			return
		}
		m.cursorX, m.cursorY = col, row
		m.mousePressed = true
		ctrl.PointerDown(ev)
	case tea.MouseMotion:
		if m.mousePressed {
			m.pointerMotion(ev, inField)
		}
	case tea.MouseRelease:
		if m.mousePressed {
			m.mousePressed = false
			ctrl.PointerUp(ev)
		}
	}
}

func (m *model) pointerMotion(ev PointerEvent, inField bool) {
	ctrl := m.session.Controller
	if !inField {
		ctrl.PointerLeave(ev)
		m.mousePressed = ctrl.State() != StateIdle
		return
	}
	m.cursorX, m.cursorY = m.surface().CellAt(ev.Point)
	ctrl.PointerMove(ev)
}

// toolAt maps a toolbar column to the tool drawn there.
func toolAt(x int) (Tool, bool) {
	offset := 0
	for i, tool := range Tools {
		w := lipgloss.Width(toolStyle.Render(toolHotkey(i) + " " + tool.Label()))
		if x >= offset && x < offset+w {
			return tool, true
		}
		offset += w
	}
	return "", false
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeHelp:
		switch msg.String() {
		case "esc", "q", "?":
			m.mode = ModeNormal
		}
		return m, nil
	case ModeNameInput:
		return m.handleNameInput(msg)
	}

	m.errorMessage = ""
	m.successMessage = ""

	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.mode = ModeHelp
	case "left", "right", "up", "down", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	case " ", "space", "enter":
		m.toggleKeyboardPointer()
	case "esc":
		if m.keyboardPressed {
			m.toggleKeyboardPointer()
		}
	case "ctrl+s":
		m.startPrompt(PromptPlayFormation)
	case "F":
		m.startPrompt(PromptFormation)
	case "ctrl+e":
		m.exportPNG()
	case "ctrl+t":
		m.exportText()
	case "y":
		if err := copyPlayToClipboard(m.session.Entities()); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Copied play JSON to clipboard"
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		i := int(key[0]-'0') - 1
		if i < 0 {
			i = 9
		}
		m.session.Tools.SetTool(Tools[i])
	default:
		m.session.Controller.KeyDown(parseKey(key))
	}
	return m, nil
}

func (m *model) startPrompt(prompt NamePrompt) {
	m.mode = ModeNameInput
	m.prompt = prompt
	m.input = ""
	m.session.Controller.SetTextInputFocus(true)
}

func (m *model) endPrompt() {
	m.mode = ModeNormal
	m.input = ""
	m.session.Controller.SetTextInputFocus(false)
}

func (m model) handleNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.endPrompt()
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input)
		switch m.prompt {
		case PromptFormation:
			m.endPrompt()
			return m, m.saveFormationCmd(name)
		case PromptPlayFormation:
			m.formationName = name
			m.prompt = PromptPlayName
			m.input = ""
		case PromptPlayName:
			m.endPrompt()
			return m, m.savePlayCmd(name, m.formationName)
		}
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// saveFormationCmd captures the play now; later edits do not reach the
// save.
func (m model) saveFormationCmd(name string) tea.Cmd {
	entities := m.session.Entities()
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		f, err := store.SaveFormation(ctx, name, entities)
		if err != nil {
			return saveResultMsg{err: err}
		}
		return saveResultMsg{message: fmt.Sprintf("Saved formation %q (%s, %d players)", f.Name, f.Type, len(f.Players))}
	}
}

func (m model) savePlayCmd(name, formation string) tea.Cmd {
	entities := m.session.Entities()
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		p, err := store.SavePlay(ctx, name, formation, entities)
		if err != nil {
			return saveResultMsg{err: err}
		}
		return saveResultMsg{message: fmt.Sprintf("Saved play %q on formation %q", p.Name, p.Formation)}
	}
}

func (m *model) exportPNG() {
	filename := m.config.GetSavePath(fmt.Sprintf("play-%s.png", time.Now().Format("20060102-150405")))
	err := ExportPNG(filename, m.session.Constraints.Field(), m.session.Constraints.Rules(), m.session.Entities())
	if err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = "Exported " + filename
}

func (m *model) exportText() {
	filename := m.config.GetSavePath(fmt.Sprintf("play-%s.txt", time.Now().Format("20060102-150405")))
	s := m.surface()
	if err := exportVisualTXT(filename, m.session.View(), s.field, s.cols, s.rows); err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = "Exported " + filename
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.mode == ModeHelp {
		return m.helpView()
	}
	view := m.session.View()
	grid := fieldGrid(view, m.surface(), m.cursorX, m.cursorY)
	return lipgloss.JoinVertical(lipgloss.Left,
		renderToolbar(view.Tool),
		styledField(grid),
		m.statusLine(view),
	)
}

func (m model) statusLine(view View) string {
	if m.mode == ModeNameInput {
		label := "Formation name: "
		if m.prompt == PromptPlayName {
			label = "Play name: "
		}
		return statusStyle.Render(label + m.input + "█")
	}
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return statusStyle.Render(fmt.Sprintf("%s | %s | grid %s | guides %s | players %d | history %d/%d | ? help",
		strings.ToUpper(string(view.Tool)), view.State, onOff(view.GridEnabled), onOff(view.GuidesEnabled),
		len(view.Players), view.Cursor, view.Total))
}

func (m model) helpView() string {
	lines := []string{
		"huddle help",
		"===========",
		"",
		"Tools:",
		"  1-0              Pick a toolbar tool (or click it)",
		"  v / o / d / l    Select / Offense / Defense / O-Line",
		"  r                Route tool",
		"  Delete/Backspace Remove tool",
		"",
		"Editing:",
		"  mouse            Click to place, drag to draw or move",
		"  arrows           Move the keyboard cursor (shift: faster)",
		"  space / enter    Press or release at the cursor",
		"  alt + drag       Move without grid snapping",
		"  ctrl + drag      Move without alignment guides",
		"  ctrl+z           Undo",
		"  ctrl+shift+z     Redo (ctrl+y in terminals that cannot send it)",
		"  g / a            Toggle grid / alignment guides",
		"",
		"Files:",
		"  ctrl+s           Save play (asks for formation and play names)",
		"  F                Save formation",
		"  ctrl+e           Export PNG",
		"  ctrl+t           Export text",
		"  y                Copy play JSON to the clipboard",
		"",
		"  q                Quit",
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}
