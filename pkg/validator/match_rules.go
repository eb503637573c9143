package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sport selects sport-specific bounds for score validation.
type Sport string

const (
	SportCricket  Sport = "cricket"
	SportFootball Sport = "football"
)

const (
	cricketMaxScore  = 1000
	footballMaxScore = 50
	maxWickets       = 10

	defaultDescriptionLength = 500
)

var (
	// Whole overs, optionally followed by balls 0-5 of the current over.
	oversRegex = regexp.MustCompile(`^(\d+)(?:\.([0-5]))?$`)

	teamNameRegex   = regexp.MustCompile(`^[\p{L}\p{N} \-'&.]+$`)
	playerNameRegex = regexp.MustCompile(`^[\p{L} \-'.]+$`)
)

var maxScores = map[Sport]int{
	SportCricket:  cricketMaxScore,
	SportFootball: footballMaxScore,
}

// Sports lists the supported sports in stable order.
func Sports() []string {
	return []string{string(SportCricket), string(SportFootball)}
}

// MaxScore returns the upper score bound for sport, or false for an unknown sport.
func (s Sport) MaxScore() (int, bool) {
	if err := Apply(ValidEnum("sport", string(s), Sports())); err != nil {
		return 0, false
	}
	return maxScores[s], true
}

// ValidateScore checks a non-negative whole score within the bound for sport.
func ValidateScore(value any, sport Sport) Result {
	if err := Apply(ValidEnum("sport", string(sport), Sports())); err != nil {
		return Fail(fmt.Sprintf("Unsupported sport %q", sport))
	}
	max := maxScores[sport]
	if isBlank(value) {
		return Fail("Score is required")
	}
	n, ok := toFloat(value)
	if !ok {
		return Fail("Score must be a number")
	}
	return Check(
		WholeNumber("Score", n),
		newRule("Score", "validation.score_negative", "Score cannot be negative", func() bool { return n >= 0 }),
		newRule("Score", "validation.score_max", fmt.Sprintf("Score cannot exceed %d", max), func() bool {
			return n <= float64(max)
		}),
	)
}

// Score binds ValidateScore to sport.
func Score(sport Sport) FieldValidator {
	return func(value any) Result {
		return ValidateScore(value, sport)
	}
}

func ValidateWickets(value any) Result {
	if isBlank(value) {
		return Fail("Wickets is required")
	}
	n, ok := toFloat(value)
	if !ok {
		return Fail("Wickets must be a number")
	}
	return Check(
		WholeNumber("Wickets", n),
		newRule("Wickets", "validation.wickets_range", fmt.Sprintf("Wickets must be between 0 and %d", maxWickets), func() bool {
			return n >= 0 && n <= maxWickets
		}),
	)
}

// ValidateOvers accepts "N" or "N.B" where B is the ball of the over (0-5).
// A positive maxOvers caps the total.
func ValidateOvers(value any, maxOvers int) Result {
	raw := strings.TrimSpace(toString(value))
	if raw == "" {
		return Fail("Overs is required")
	}
	m := oversRegex.FindStringSubmatch(raw)
	if m == nil {
		return Fail("Overs must be in the format N or N.B where B is between 0 and 5")
	}
	if maxOvers <= 0 {
		return OK()
	}

	whole, err := strconv.Atoi(m[1])
	if err != nil {
		return Fail("Overs must be in the format N or N.B where B is between 0 and 5")
	}
	balls := 0
	if m[2] != "" {
		balls = int(m[2][0] - '0')
	}
	if whole*6+balls > maxOvers*6 {
		return Fail(fmt.Sprintf("Overs cannot exceed %d", maxOvers))
	}
	return OK()
}

// Overs binds ValidateOvers to maxOvers.
func Overs(maxOvers int) FieldValidator {
	return func(value any) Result {
		return ValidateOvers(value, maxOvers)
	}
}

// ValidateMatchDate requires a date from today up to one year ahead.
func ValidateMatchDate(value any) Result {
	if isBlank(value) {
		return Fail("Match date is required")
	}
	t, ok := toTime(value)
	if !ok {
		return Fail("Please enter a valid match date")
	}

	now := time.Now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	return Check(
		newRule("Match date", "validation.match_date_past", "Match date cannot be in the past", func() bool {
			return !t.Before(today)
		}),
		newRule("Match date", "validation.match_date_max", "Match date cannot be more than one year ahead", func() bool {
			return !t.After(now.AddDate(1, 0, 0))
		}),
	)
}

// ValidateDateRange requires both dates and an end that is not before the start.
func ValidateDateRange(start, end any) Result {
	if isBlank(start) {
		return Fail("Start date is required")
	}
	if isBlank(end) {
		return Fail("End date is required")
	}
	s, ok := toTime(start)
	if !ok {
		return Fail("Please enter a valid start date")
	}
	e, ok := toTime(end)
	if !ok {
		return Fail("Please enter a valid end date")
	}
	if e.Before(s) {
		return Fail("End date must be on or after the start date")
	}
	return OK()
}

func ValidateTeamName(value any) Result {
	name := strings.TrimSpace(toString(value))
	return Check(
		RequiredString("Team name", name),
		MinLenString("Team name", name, 2),
		MaxLenString("Team name", name, 50),
		MatchesPattern("Team name", name, teamNameRegex, "Team name contains invalid characters"),
	)
}

func ValidatePlayerName(value any) Result {
	name := strings.TrimSpace(toString(value))
	return Check(
		RequiredString("Player name", name),
		MinLenString("Player name", name, 2),
		MaxLenString("Player name", name, 50),
		MatchesPattern("Player name", name, playerNameRegex,
			"Player name can only contain letters, spaces, hyphens, apostrophes and periods"),
	)
}

func ValidateTournamentName(value any) Result {
	name := strings.TrimSpace(toString(value))
	return Check(
		RequiredString("Tournament name", name),
		MinLenString("Tournament name", name, 3),
		MaxLenString("Tournament name", name, 100),
	)
}

// ValidateDescription is optional; a non-positive maxLength means 500.
func ValidateDescription(value any, maxLength int) Result {
	if maxLength <= 0 {
		maxLength = defaultDescriptionLength
	}
	return Check(MaxLenString("Description", strings.TrimSpace(toString(value)), maxLength))
}

// Description binds ValidateDescription to maxLength.
func Description(maxLength int) FieldValidator {
	return func(value any) Result {
		return ValidateDescription(value, maxLength)
	}
}
