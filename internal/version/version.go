package version

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Заполняются через -ldflags "-X github.com/szydell/ufoai/internal/version.Date=..."
var (
	Date   string // YYYY-MM-DD (UTC)
	Commit string
	Branch string
	CI     string
)

// epoch - день нулевой сборки
var epoch = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

// Build - метаданные сборки
type Build struct {
	Number int
	Date   string
	Commit string
	Branch string
	CI     string
	Known  bool
	Error  string
}

// BuildNumber - число дней от epoch до даты сборки
func BuildNumber(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}
	return int(t.Sub(epoch).Hours() / 24), nil
}

// Current собирает метаданные текущего бинарника
func Current() Build {
	b := Build{
		Date:   Date,
		Commit: coalesce(Commit, "unknown"),
		Branch: coalesce(Branch, "unknown"),
		CI:     coalesce(CI, "local"),
	}
	n, err := BuildNumber(Date)
	if err != nil {
		b.Error = err.Error()
		return b
	}
	b.Number, b.Known = n, true
	return b
}

func (b Build) String() string {
	if !b.Known {
		return fmt.Sprintf("ufoai build unknown (%s)", b.Error)
	}
	return fmt.Sprintf("ufoai build %d (%s) commit[%s] branch[%s] ci[%s]",
		b.Number, b.Date, b.Commit, b.Branch, b.CI)
}

// Fields - для стартовой записи в лог
func (b Build) Fields() logrus.Fields {
	return logrus.Fields{
		"build":  b.Number,
		"commit": b.Commit,
		"branch": b.Branch,
		"ci":     b.CI,
	}
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
