package ui

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-insights/internal/models"
	"github.com/ngmaloney/weather-insights/internal/openweather"
)

// User-facing error messages
const (
	emptyQueryMessage   = "Please enter a city name"
	notFoundMessage     = "City not found. Please check the spelling and try again."
	unauthorizedMessage = "API key error. Please check your configuration."
	genericErrorMessage = "An error occurred while fetching weather data. Please try again."
)

// WeatherClient is everything the model needs from the weather provider
type WeatherClient interface {
	openweather.CurrentWeatherClient
	openweather.ForecastClient
}

// Model represents the application's view state.
//
// All fields are only touched from Update, which Bubble Tea runs on a
// single goroutine. Fetches run as commands and report back as messages.
// Overlapping searches are not de-duplicated: whichever response arrives
// last is what the user sees.
type Model struct {
	width  int
	height int

	// Search
	searchInput textinput.Model
	defaultCity string

	// API client
	client WeatherClient

	// Data
	loading         bool
	loadingForecast bool
	errMsg          string
	snapshot        *models.WeatherSnapshot
	forecast        *models.Forecast
	lastUpdated     time.Time

	// Decorative animation state
	rotated bool
	pulsing bool

	spinner  spinner.Model
	humidity progress.Model

	logger *slog.Logger
	now    func() time.Time
}

// NewModel creates a new application model. The initial search for
// defaultCity runs when the program calls Init.
func NewModel(client WeatherClient, defaultCity string, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Enter city name..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(defaultCity)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return Model{
		searchInput: ti,
		defaultCity: defaultCity,
		client:      client,
		spinner:     s,
		humidity: progress.New(
			progress.WithGradient(string(colorPrimary), string(colorAccent)),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		logger: logger.With("component", "ui"),
		now:    time.Now,
	}
}

// Init starts the initial search and both decorative timers
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		requestSearch,
		rotateTick(),
		pulseTick(),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchRequestedMsg:
		return m.submitSearch()

	case weatherFetchedMsg:
		return m.handleWeatherFetched(msg)

	case forecastFetchedMsg:
		m.loadingForecast = false
		if msg.err != nil {
			// Keep existing forecast if fetch failed
			m.logger.Warn("forecast fetch failed", "err", msg.err)
			return m, nil
		}
		m.forecast = msg.forecast
		return m, nil

	case rotateTickMsg:
		m.rotated = !m.rotated
		return m, rotateTick()

	case pulseTickMsg:
		m.pulsing = true
		return m, tea.Batch(pulseReset(), pulseTick())

	case pulseResetMsg:
		m.pulsing = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submitSearch()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// submitSearch validates the query and dispatches a fetch.
// A search may start while another is still loading; neither is cancelled.
func (m Model) submitSearch() (Model, tea.Cmd) {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.errMsg = emptyQueryMessage
		return m, nil
	}

	m.loading = true
	m.errMsg = ""
	m.logger.Info("search dispatched", "city", query)

	return m, tea.Batch(fetchWeather(m.client, query), m.spinner.Tick)
}

// handleWeatherFetched applies a completed search. Loading is cleared even
// when a newer search is still in flight.
func (m Model) handleWeatherFetched(msg weatherFetchedMsg) (Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil {
		// Keep the previous snapshot; the error view hides it
		m.errMsg = errorMessage(msg.err)
		m.logger.Warn("search failed",
			"city", msg.city,
			"kind", openweather.KindOf(msg.err).String(),
			"err", msg.err,
		)
		return m, nil
	}

	m.snapshot = msg.snapshot
	m.lastUpdated = m.now()
	m.searchInput.SetValue(msg.snapshot.Location)
	m.searchInput.CursorEnd()
	m.logger.Info("search completed",
		"city", msg.city,
		"location", msg.snapshot.Location,
		"country", msg.snapshot.Country,
	)

	m.loadingForecast = true
	return m, fetchForecast(m.client, forecastQuery(msg.snapshot))
}

// errorMessage turns a fetch failure into the text shown to the user
func errorMessage(err error) string {
	switch openweather.KindOf(err) {
	case openweather.KindNotFound:
		return notFoundMessage
	case openweather.KindUnauthorized:
		return unauthorizedMessage
	default:
		return genericErrorMessage
	}
}

// forecastQuery pins the forecast to the city the provider resolved
func forecastQuery(s *models.WeatherSnapshot) string {
	if s.Country == "" {
		return s.Location
	}
	return s.Location + "," + s.Country
}

// IsNight reports whether now is outside the last fetched sunrise-sunset
// window. Before the first successful fetch both instants are zero and
// every time counts as night.
func (m Model) IsNight(now time.Time) bool {
	var snap models.WeatherSnapshot
	if m.snapshot != nil {
		snap = *m.snapshot
	}
	return snap.IsNightAt(now)
}

// Query returns the current search text
func (m Model) Query() string {
	return m.searchInput.Value()
}

// Loading reports whether a search has been dispatched and not completed
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the message for the last failure, or "" if there is none
func (m Model) Err() string {
	return m.errMsg
}

// Snapshot returns the last successfully fetched weather, if any
func (m Model) Snapshot() (models.WeatherSnapshot, bool) {
	if m.snapshot == nil {
		return models.WeatherSnapshot{}, false
	}
	return *m.snapshot, true
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.viewHeader(), "", m.viewSearch(), "")

	switch {
	case m.errMsg != "":
		sections = append(sections, errorBoxStyle.Render("✗ "+m.errMsg))
	case m.snapshot != nil:
		sections = append(sections, m.renderWeather())
		if f := m.renderForecast(); f != "" {
			sections = append(sections, f)
		}
	default:
		sections = append(sections, mutedStyle.Render("Fetching weather..."))
	}

	sections = append(sections, helpStyle.Render("Enter: Search • Esc/Ctrl+C: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewHeader renders the title, the sun/moon glyph and the current time
func (m Model) viewHeader() string {
	now := m.now()

	title := titleStyle.Render(celestialGlyph(m.IsNight(now), m.rotated) + "  Weather Insights")
	clock := mutedStyle.Render(now.Format("Monday, January 2, 2006 03:04 PM"))

	return lipgloss.JoinVertical(lipgloss.Left, title, clock)
}

// viewSearch renders the input box and the search button
func (m Model) viewSearch() string {
	boxStyle := searchBoxStyle
	if m.errMsg != "" {
		boxStyle = boxStyle.BorderForeground(colorDanger)
	}
	box := boxStyle.Render(m.searchInput.View())

	var button string
	switch {
	case m.loading:
		button = buttonStyle.Render(m.spinner.View() + " Searching...")
	case m.pulsing:
		button = pulsingButtonStyle.Render("Search")
	default:
		button = buttonStyle.Render("Search")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", button)
}

// celestialGlyph picks the header glyph; rotated alternates between two
// variants so the header animates
func celestialGlyph(night, rotated bool) string {
	switch {
	case night && rotated:
		return "☽"
	case night:
		return "☾"
	case rotated:
		return "☼"
	default:
		return "☀"
	}
}
