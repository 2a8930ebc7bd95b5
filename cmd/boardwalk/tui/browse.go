package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marshallshelly/boardwalk/pkg/board"
	"github.com/marshallshelly/boardwalk/pkg/session"
)

// scrollThresholdRows is how close to the bottom of the loaded rows the
// cursor may get before the next page is requested, the terminal analogue
// of the 200px viewport threshold.
const scrollThresholdRows = 5

// resizeStepPx is the width delta one resize keypress applies.
const resizeStepPx = 20

// BrowseMode represents the current mode of the posts UI
type BrowseMode int

const (
	ModeChecking BrowseMode = iota
	ModeDenied
	ModeList
	ModeSearch
	ModeDates
	ModeForm
	ModeDetail
	ModeConfirmDelete
)

// PostsService is the slice of the API the browse UI needs.
type PostsService interface {
	List(ctx context.Context, q board.Query, cursor string) (board.Page, error)
	Create(ctx context.Context, input board.PostInput) (board.Post, error)
	UpdateFull(ctx context.Context, id string, input board.PostInput) (board.Post, error)
	Delete(ctx context.Context, id string) error
}

// BrowseModel is the main Bubbletea model for the posts browser.
type BrowseModel struct {
	mode   BrowseMode
	client PostsService
	tokens session.TokenGetter

	feed     *board.Feed
	columns  board.Columns
	debounce board.Debouncer
	form     board.Form

	searchInput textinput.Model
	fromInput   textinput.Model
	toInput     textinput.Model

	titleInput textinput.Model
	bodyInput  textarea.Model
	tagsInput  textinput.Model
	formFocus  int

	confirm  ConfirmationDialog
	detail   *board.Post
	spinner  spinner.Model
	decision session.Decision

	cursor    int
	selCol    int
	dateFocus int
	errMsg    string
	width     int
	height    int
}

// NewBrowseModel creates the posts browser.
func NewBrowseModel(client PostsService, tokens session.TokenGetter) BrowseModel {
	search := textinput.New()
	search.Placeholder = "search title or body"
	search.CharLimit = 120
	search.Width = 28

	from := textinput.New()
	from.Placeholder = "2026-01-01T00:00"
	from.CharLimit = 19
	from.Width = 20

	to := textinput.New()
	to.Placeholder = "2026-12-31T23:59"
	to.CharLimit = 19
	to.Width = 20

	title := textinput.New()
	title.Placeholder = "title (max 80 chars)"
	title.CharLimit = 200
	title.Width = 60

	body := textarea.New()
	body.Placeholder = "body (max 2000 chars)"
	body.SetWidth(60)
	body.SetHeight(8)

	tags := textinput.New()
	tags.Placeholder = "tags, comma separated (max 5)"
	tags.CharLimit = 200
	tags.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	return BrowseModel{
		mode:        ModeChecking,
		client:      client,
		tokens:      tokens,
		feed:        board.NewFeed(board.DefaultQuery()),
		columns:     board.DefaultColumns(),
		searchInput: search,
		fromInput:   from,
		toInput:     to,
		titleInput:  title,
		bodyInput:   body,
		tagsInput:   tags,
		spinner:     sp,
	}
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(
		checkGateCmd(m.tokens),
		m.spinner.Tick,
		tea.EnterAltScreen,
	)
}

// Messages
type gateMsg struct {
	decision session.Decision
}

type pageMsg struct {
	req  board.PageRequest
	page board.Page
	err  error
}

type debounceFireMsg struct {
	gen int
}

type mutationDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	id  string
	err error
}

type confirmCancelledMsg struct{}

// Commands
func checkGateCmd(tokens session.TokenGetter) tea.Cmd {
	return func() tea.Msg {
		return gateMsg{decision: session.RequireAuth(tokens, "")}
	}
}

func fetchPageCmd(client PostsService, req board.PageRequest) tea.Cmd {
	return func() tea.Msg {
		page, err := client.List(context.Background(), req.Query, req.Cursor)
		return pageMsg{req: req, page: page, err: err}
	}
}

func debounceCmd(gen int) tea.Cmd {
	return tea.Tick(board.SearchDebounce, func(time.Time) tea.Msg {
		return debounceFireMsg{gen: gen}
	})
}

func submitCmd(client PostsService, editingID string, input board.PostInput) tea.Cmd {
	return func() tea.Msg {
		var err error
		if editingID != "" {
			_, err = client.UpdateFull(context.Background(), editingID, input)
		} else {
			_, err = client.Create(context.Background(), input)
		}
		return mutationDoneMsg{err: err}
	}
}

func deleteCmd(client PostsService, id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: client.Delete(context.Background(), id)}
	}
}

// maybeFetch requests the next page unless one is in flight or the listing
// is exhausted.
func (m *BrowseModel) maybeFetch() tea.Cmd {
	req, ok := m.feed.Begin()
	if !ok {
		return nil
	}
	return fetchPageCmd(m.client, req)
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case gateMsg:
		m.decision = msg.decision
		if !msg.decision.Allowed {
			m.mode = ModeDenied
			return m, nil
		}
		m.mode = ModeList
		return m, m.maybeFetch()

	case pageMsg:
		// Stale errors are as irrelevant as stale results.
		current := m.feed.IsCurrent(msg.req)
		m.feed.Complete(msg.req, msg.page, msg.err)
		if msg.err != nil && current {
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case debounceFireMsg:
		value, ok := m.debounce.Fire(msg.gen)
		if !ok {
			return m, nil
		}
		if m.feed.SetSearch(value) {
			m.cursor = 0
			return m, m.maybeFetch()
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.form.SubmitFailed(msg.err.Error())
			return m, nil
		}
		m.form.SubmitSucceeded()
		m.mode = ModeList
		m.feed.Refresh()
		m.cursor = 0
		return m, m.maybeFetch()

	case confirmCancelledMsg:
		m.mode = ModeList
		return m, nil

	case deleteDoneMsg:
		m.mode = ModeList
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.feed.Refresh()
		m.cursor = 0
		return m, m.maybeFetch()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m BrowseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeChecking:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case ModeDenied:
		return m, tea.Quit

	case ModeList:
		return m.updateList(msg)

	case ModeSearch:
		return m.updateSearch(msg)

	case ModeDates:
		return m.updateDates(msg)

	case ModeForm:
		return m.updateForm(msg)

	case ModeDetail:
		switch msg.String() {
		case "esc", "q", "enter":
			m.detail = nil
			m.mode = ModeList
		case "e":
			if m.detail != nil {
				post := *m.detail
				m.detail = nil
				m.openEdit(post)
			}
		}
		return m, nil

	case ModeConfirmDelete:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.mode = ModeList
			return m, nil
		default:
			return m, m.confirm.Update(msg)
		}
	}

	return m, nil
}

func (m BrowseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.feed.Len()-1 {
			m.cursor++
		}
		// Infinite scroll: request the next page as the cursor nears the
		// bottom of the loaded rows.
		if m.feed.Len()-m.cursor <= scrollThresholdRows {
			return m, m.maybeFetch()
		}
		return m, nil

	case "/":
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "c":
		m.feed.SetCategory(nextCategory(m.feed.Query().Category))
		m.cursor = 0
		return m, m.maybeFetch()

	case "s":
		if m.feed.Query().Sort == board.SortByCreatedAt {
			m.feed.SetSort(board.SortByTitle)
		} else {
			m.feed.SetSort(board.SortByCreatedAt)
		}
		m.cursor = 0
		return m, m.maybeFetch()

	case "o":
		if m.feed.Query().Order == board.OrderDesc {
			m.feed.SetOrder(board.OrderAsc)
		} else {
			m.feed.SetOrder(board.OrderDesc)
		}
		m.cursor = 0
		return m, m.maybeFetch()

	case "b":
		m.mode = ModeDates
		m.dateFocus = 0
		m.fromInput.Focus()
		m.toInput.Blur()
		return m, textinput.Blink

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		if idx < len(m.columns) {
			m.columns.ToggleVisible(m.columns[idx].Key)
		}
		return m, nil

	case "tab":
		m.selCol = (m.selCol + 1) % len(m.columns)
		return m, nil

	case "<":
		col := m.columns[m.selCol]
		m.columns.Resize(col.Key, col.Width-resizeStepPx)
		return m, nil

	case ">":
		col := m.columns[m.selCol]
		m.columns.Resize(col.Key, col.Width+resizeStepPx)
		return m, nil

	case "n":
		m.openCreate()
		return m, textinput.Blink

	case "e":
		if post, ok := m.selectedPost(); ok {
			m.openEdit(post)
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		post, ok := m.selectedPost()
		if !ok {
			return m, nil
		}
		id := post.ID
		m.confirm = NewConfirmationDialog(
			"Delete Post",
			fmt.Sprintf("Delete %q?\nThis cannot be undone.", Truncate(post.Title, 50)),
		)
		m.confirm.OnConfirm = func() tea.Cmd {
			return deleteCmd(m.client, id)
		}
		m.confirm.OnCancel = func() tea.Cmd {
			return func() tea.Msg { return confirmCancelledMsg{} }
		}
		m.mode = ModeConfirmDelete
		return m, nil

	case "enter":
		if post, ok := m.selectedPost(); ok {
			m.detail = &post
			m.mode = ModeDetail
		}
		return m, nil

	case "r":
		m.feed.Refresh()
		m.cursor = 0
		return m, m.maybeFetch()

	case "x":
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m BrowseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		m.mode = ModeList
		return m, nil
	case "enter":
		// Commit immediately instead of waiting out the debounce.
		m.debounce.Cancel()
		m.searchInput.Blur()
		m.mode = ModeList
		if m.feed.SetSearch(strings.TrimSpace(m.searchInput.Value())) {
			m.cursor = 0
			return m, m.maybeFetch()
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		gen := m.debounce.Touch(strings.TrimSpace(m.searchInput.Value()))
		return m, tea.Batch(cmd, debounceCmd(gen))
	}
	return m, cmd
}

func (m BrowseModel) updateDates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.fromInput.Blur()
		m.toInput.Blur()
		m.mode = ModeList
		return m, nil
	case "tab", "shift+tab":
		m.dateFocus = 1 - m.dateFocus
		if m.dateFocus == 0 {
			m.fromInput.Focus()
			m.toInput.Blur()
		} else {
			m.toInput.Focus()
			m.fromInput.Blur()
		}
		return m, textinput.Blink
	case "enter":
		from, err := board.BoundToISO(strings.TrimSpace(m.fromInput.Value()), time.Local)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		to, err := board.BoundToISO(strings.TrimSpace(m.toInput.Value()), time.Local)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.fromInput.Blur()
		m.toInput.Blur()
		m.mode = ModeList
		if m.feed.SetBounds(from, to) {
			m.cursor = 0
			return m, m.maybeFetch()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.dateFocus == 0 {
		m.fromInput, cmd = m.fromInput.Update(msg)
	} else {
		m.toInput, cmd = m.toInput.Update(msg)
	}
	return m, cmd
}

func (m *BrowseModel) openCreate() {
	m.form.OpenCreate()
	m.titleInput.SetValue("")
	m.bodyInput.SetValue("")
	m.tagsInput.SetValue("")
	m.formFocus = 0
	m.focusFormField()
	m.mode = ModeForm
}

func (m *BrowseModel) openEdit(post board.Post) {
	m.form.OpenEdit(post)
	m.titleInput.SetValue(post.Title)
	m.bodyInput.SetValue(post.Body)
	m.tagsInput.SetValue(board.JoinTags(post.Tags))
	m.formFocus = 0
	m.focusFormField()
	m.mode = ModeForm
}

// Form fields: 0 title, 1 body, 2 category, 3 tags.
func (m *BrowseModel) focusFormField() {
	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.tagsInput.Blur()
	switch m.formFocus {
	case 0:
		m.titleInput.Focus()
	case 1:
		m.bodyInput.Focus()
	case 3:
		m.tagsInput.Focus()
	}
}

func (m BrowseModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.IsSubmitting() {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form.Close()
		m.mode = ModeList
		return m, nil

	case "tab":
		m.formFocus = (m.formFocus + 1) % 4
		m.focusFormField()
		return m, textinput.Blink

	case "shift+tab":
		m.formFocus = (m.formFocus + 3) % 4
		m.focusFormField()
		return m, textinput.Blink

	case "ctrl+s":
		m.form.Title = m.titleInput.Value()
		m.form.Body = m.bodyInput.Value()
		m.form.TagsInput = m.tagsInput.Value()
		input, ok := m.form.Submit()
		if !ok {
			return m, nil
		}
		editingID := ""
		if m.form.Editing() != nil {
			editingID = m.form.Editing().ID
		}
		return m, submitCmd(m.client, editingID, input)
	}

	if m.formFocus == 2 {
		switch msg.String() {
		case "left", "right", " ", "enter":
			m.form.Category = nextFormCategory(m.form.Category, msg.String() != "left")
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case 1:
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	case 3:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	}
	return m, cmd
}

func (m BrowseModel) selectedPost() (board.Post, bool) {
	items := m.feed.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return board.Post{}, false
	}
	return items[m.cursor], true
}

// nextCategory cycles all -> FREE -> NOTICE -> QNA -> all.
func nextCategory(c board.Category) board.Category {
	order := append([]board.Category{""}, board.Categories()...)
	for i, cat := range order {
		if cat == c {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}

func nextFormCategory(c board.Category, forward bool) board.Category {
	cats := board.Categories()
	for i, cat := range cats {
		if cat == c {
			if forward {
				return cats[(i+1)%len(cats)]
			}
			return cats[(i+len(cats)-1)%len(cats)]
		}
	}
	return cats[0]
}

// RunBrowse starts the interactive posts browser.
func RunBrowse(client PostsService, tokens session.TokenGetter) error {
	p := tea.NewProgram(NewBrowseModel(client, tokens))
	_, err := p.Run()
	return err
}
