// Package model is the bubbletea program for the Notation client: the
// screens, the transitions between them, and the synchronization of
// the note list with the remote API.
package model

import (
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Nagraj23/notation-tui/api"
	"github.com/Nagraj23/notation-tui/logger"
	"github.com/Nagraj23/notation-tui/session"
	"github.com/Nagraj23/notation-tui/utils"
)

type Model struct {
	api   noteAPI
	store sessionStore
	log   zerolog.Logger

	scr    screen
	width  int
	height int

	sess session.Session

	// login form: email, password
	loginInputs [2]textinput.Model
	loginFocus  int
	loginBusy   bool

	// register form: full name, email, password, confirm
	regInputs [4]textinput.Model
	regFocus  int
	regBusy   bool
	regDone   bool

	// home screen
	list         list.Model
	notes        []api.Note
	fetchSeq     int
	loadingNotes bool
	spin         spinner.Model
	detailID     string
	detailBody   string
	confirmID    string

	// editor screen
	editMode    bool
	editID      string
	titleInput  textinput.Model
	contentArea textarea.Model
	loadingNote bool
	saving      bool

	status    string
	lastError string
}

func New(client noteAPI, store sessionStore) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Width = 40

	pass := newPasswordInput("password")

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 64
	name.Width = 40

	regEmail := textinput.New()
	regEmail.Placeholder = "you@example.com"
	regEmail.CharLimit = 64
	regEmail.Width = 40

	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.CharLimit = 120
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Start writing here..."
	ta.CharLimit = 0

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Your Notes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		api:         client,
		store:       store,
		log:         logger.Get().With().Str("component", "ui").Logger(),
		loginInputs: [2]textinput.Model{email, pass},
		regInputs: [4]textinput.Model{
			name, regEmail,
			newPasswordInput("password"),
			newPasswordInput("confirm password"),
		},
		list:        l,
		spin:        sp,
		titleInput:  ti,
		contentArea: ta,
	}

	m.sess = store.Read()
	m.scr = resolveScreen(screenLanding, m.sess.LoggedIn())
	if m.scr == screenHome {
		m.fetchSeq = 1
		m.loadingNotes = true
	}
	return m
}

func newPasswordInput(placeholder string) textinput.Model {
	pi := textinput.New()
	pi.Placeholder = placeholder
	pi.CharLimit = 64
	pi.Width = 40
	pi.EchoMode = textinput.EchoPassword
	pi.EchoCharacter = '•'
	return pi
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.loadingNotes {
		cmds = append(cmds, m.spin.Tick, fetchNotesCmd(m.api, m.sess.Token, m.fetchSeq))
	}
	return tea.Batch(cmds...)
}

// navigate routes every screen change through the guard and applies
// per-screen entry effects.
func (m *Model) navigate(target screen) tea.Cmd {
	dest := resolveScreen(target, m.sess.LoggedIn())
	if dest != target {
		m.log.Debug().Stringer("target", target).Stringer("resolved", dest).Msg("navigation redirected")
	}
	m.scr = dest
	m.status = ""
	m.lastError = ""

	switch dest {
	case screenHome:
		m.detailID = ""
		m.confirmID = ""
		return m.startFetch()
	case screenLogin:
		m.loginBusy = false
		m.loginFocus = 0
		m.focusLogin()
	case screenRegister:
		m.regBusy = false
		m.regDone = false
		m.regFocus = 0
		m.focusRegister()
	}
	return nil
}

// startFetch bumps the fetch sequence so responses from superseded
// fetches are dropped instead of clobbering newer state.
func (m *Model) startFetch() tea.Cmd {
	m.fetchSeq++
	m.loadingNotes = true
	return tea.Batch(m.spin.Tick, fetchNotesCmd(m.api, m.sess.Token, m.fetchSeq))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.lastError = ""
}

func (m *Model) setError(s string) {
	m.status = s
	m.lastError = s
}

// fail surfaces an error on the current screen; auth failures end the
// session flow and land on the login screen instead.
func (m *Model) fail(err error) {
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		m.scr = screenLogin
		m.loginBusy = false
		m.setError(authErr.Message)
		return
	}
	m.setError(err.Error())
}

func (m *Model) focusLogin() {
	for i := range m.loginInputs {
		if i == m.loginFocus {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
}

func (m *Model) focusRegister() {
	for i := range m.regInputs {
		if i == m.regFocus {
			m.regInputs[i].Focus()
		} else {
			m.regInputs[i].Blur()
		}
	}
}

func (m *Model) openCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.titleInput.SetValue("")
	m.contentArea.SetValue("")
	m.titleInput.Focus()
	m.contentArea.Blur()
	m.saving = false
	m.loadingNote = false
	return m.navigate(screenEditor)
}

func (m *Model) openEdit(n api.Note) tea.Cmd {
	m.editMode = true
	m.editID = n.ID
	// hand the note off through the store, populate instantly from
	// the handoff copy, then fetch the authoritative version
	_ = m.store.StashNote(n)
	if stash, ok := m.store.TakeNote(); ok && stash.ID == n.ID {
		n = stash
	}
	m.titleInput.SetValue(n.Title)
	m.contentArea.SetValue(n.Content)
	m.titleInput.Focus()
	m.contentArea.Blur()
	m.saving = false
	m.loadingNote = true
	nav := m.navigate(screenEditor)
	return tea.Batch(nav, m.spin.Tick, fetchNoteCmd(m.api, m.sess.Token, n.ID))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width - 4)
		m.list.SetHeight(msg.Height - 8)
		m.contentArea.SetWidth(max(min(msg.Width-6, 100), 20))
		m.contentArea.SetHeight(max(msg.Height-14, 4))
		if m.detailID != "" {
			if n, ok := findNote(m.notes, m.detailID); ok {
				m.detailBody = renderMarkdownToANSI(n.Content, m.width)
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.loadingNotes || m.loadingNote || m.saving || m.loginBusy || m.regBusy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case loginDoneMsg:
		m.loginBusy = false
		if err := m.store.Write(msg.res.Token, msg.res.User); err != nil {
			m.log.Warn().Err(err).Msg("persisting session failed")
		}
		m.sess = session.Session{Token: msg.res.Token, User: msg.res.User}
		cmd := m.navigate(screenHome)
		if msg.res.User.Name != "" {
			m.setStatus("Welcome back, " + msg.res.User.Name)
		}
		return m, cmd

	case registerDoneMsg:
		m.regBusy = false
		if err := m.store.Write(msg.res.Token, msg.res.User); err != nil {
			m.log.Warn().Err(err).Msg("persisting session failed")
		}
		m.sess = session.Session{Token: msg.res.Token, User: msg.res.User}
		m.regDone = true
		m.setStatus("You're all set! Redirecting...")
		return m, registerRedirectCmd()

	case registerRedirectMsg:
		if m.scr == screenRegister && m.regDone {
			return m, m.navigate(screenHome)
		}
		return m, nil

	case authFailedMsg:
		m.loginBusy = false
		m.regBusy = false
		m.setError(msg.err.Error())
		return m, nil

	case notesLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loadingNotes = false
		notes := msg.notes
		sortNotesByCreated(notes)
		m.notes = notes
		m.list.SetItems(noteItems(m.notes))
		return m, nil

	case notesFailedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loadingNotes = false
		// a failed fetch does not keep a stale list around
		m.notes = nil
		m.list.SetItems(nil)
		m.fail(msg.err)
		return m, nil

	case noteLoadedMsg:
		m.loadingNote = false
		if m.scr == screenEditor && m.editMode && msg.note.ID == m.editID {
			m.titleInput.SetValue(msg.note.Title)
			m.contentArea.SetValue(msg.note.Content)
		}
		return m, nil

	case noteLoadFailedMsg:
		m.loadingNote = false
		if m.scr != screenEditor || !m.editMode {
			return m, nil
		}
		var authErr *api.AuthError
		if errors.As(msg.err, &authErr) {
			m.fail(msg.err)
			return m, nil
		}
		// the note could not be loaded for editing: back to the list
		cmd := m.navigate(screenHome)
		m.setError(msg.err.Error())
		return m, cmd

	case saveDoneMsg:
		m.saving = false
		verb := "created"
		if msg.edited {
			verb = "updated"
		}
		cmd := m.navigate(screenHome)
		m.setStatus("Note " + verb + " successfully")
		return m, cmd

	case saveFailedMsg:
		m.saving = false
		// form stays populated for retry
		m.fail(msg.err)
		return m, nil

	case deleteDoneMsg:
		m.setStatus("Deleted note")
		return m, nil

	case deleteFailedMsg:
		// wholesale rollback to the snapshot taken when the delete
		// was issued
		m.notes = msg.snapshot
		m.list.SetItems(noteItems(m.notes))
		m.fail(msg.err)
		return m, nil
	}

	switch m.scr {
	case screenLanding:
		return m.updateLanding(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenEditor:
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m Model) updateLanding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "l", "enter":
			return m, m.navigate(screenLogin)
		case "r":
			return m, m.navigate(screenRegister)
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, m.navigate(screenLanding)
		case "ctrl+r":
			return m, m.navigate(screenRegister)
		case "tab", "down":
			m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
			m.focusLogin()
			return m, nil
		case "shift+tab", "up":
			m.loginFocus = (m.loginFocus + len(m.loginInputs) - 1) % len(m.loginInputs)
			m.focusLogin()
			return m, nil
		case "enter":
			if m.loginBusy {
				return m, nil
			}
			m.loginBusy = true
			m.status = ""
			m.lastError = ""
			return m, tea.Batch(m.spin.Tick,
				loginCmd(m.api, m.loginInputs[0].Value(), m.loginInputs[1].Value()))
		}
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.regDone {
		// interstitial: wait for the redirect tick
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, m.navigate(screenLanding)
		case "ctrl+l":
			return m, m.navigate(screenLogin)
		case "tab", "down":
			m.regFocus = (m.regFocus + 1) % len(m.regInputs)
			m.focusRegister()
			return m, nil
		case "shift+tab", "up":
			m.regFocus = (m.regFocus + len(m.regInputs) - 1) % len(m.regInputs)
			m.focusRegister()
			return m, nil
		case "enter":
			if m.regBusy {
				return m, nil
			}
			m.regBusy = true
			m.status = ""
			m.lastError = ""
			return m, tea.Batch(m.spin.Tick,
				registerCmd(m.api,
					m.regInputs[0].Value(), m.regInputs[1].Value(),
					m.regInputs[2].Value(), m.regInputs[3].Value()))
		}
	}

	var cmd tea.Cmd
	m.regInputs[m.regFocus], cmd = m.regInputs[m.regFocus].Update(msg)
	return m, cmd
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	// delete confirmation overlay
	if m.confirmID != "" {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "y", "Y":
				id := m.confirmID
				m.confirmID = ""
				snapshot := slices.Clone(m.notes)
				m.notes = removeNote(m.notes, id)
				m.list.SetItems(noteItems(m.notes))
				m.detailID = ""
				m.detailBody = ""
				return m, deleteNoteCmd(m.api, m.sess.Token, id, snapshot)
			case "n", "N", "esc":
				m.confirmID = ""
				return m, nil
			}
		}
		return m, nil
	}

	// detail overlay
	if m.detailID != "" {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "b", "esc":
				m.detailID = ""
				m.detailBody = ""
				return m, nil
			case "e":
				if n, ok := findNote(m.notes, m.detailID); ok {
					return m, m.openEdit(n)
				}
				return m, nil
			case "d":
				m.confirmID = m.detailID
				return m, nil
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "n", "a":
			return m, m.openCreate()
		case "r":
			return m, m.startFetch()
		case "enter":
			if it := m.list.SelectedItem(); it != nil {
				n := it.(noteItem).note
				m.detailID = n.ID
				m.detailBody = renderMarkdownToANSI(n.Content, m.width)
			}
			return m, cmd
		case "e":
			if it := m.list.SelectedItem(); it != nil {
				return m, m.openEdit(it.(noteItem).note)
			}
			return m, cmd
		case "d":
			if it := m.list.SelectedItem(); it != nil {
				m.confirmID = it.(noteItem).note.ID
			}
			return m, cmd
		}
	}
	return m, cmd
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, m.navigate(screenHome)
		case "tab":
			if m.titleInput.Focused() {
				m.titleInput.Blur()
				m.contentArea.Focus()
			} else {
				m.contentArea.Blur()
				m.titleInput.Focus()
			}
			return m, nil
		case "ctrl+e":
			content, err := utils.OpenEditorWithContent(m.contentArea.Value())
			if err != nil {
				m.setError("Editor failed: " + err.Error())
				return m, tea.ClearScreen
			}
			m.contentArea.SetValue(content)
			return m, tea.ClearScreen
		case "ctrl+s":
			if m.saving {
				return m, nil
			}
			title := m.titleInput.Value()
			content := m.contentArea.Value()
			if isBlank(title) || isBlank(content) {
				m.setError("Title and content cannot be empty")
				return m, nil
			}
			mode := api.SaveCreate
			if m.editMode {
				mode = api.SaveEdit
			}
			m.saving = true
			m.status = ""
			m.lastError = ""
			return m, tea.Batch(m.spin.Tick,
				saveNoteCmd(m.api, m.sess.Token, m.sess.User.ID,
					api.NoteDraft{Title: title, Content: content}, mode, m.editID))
		}
	}

	var cmd tea.Cmd
	if m.titleInput.Focused() {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}
