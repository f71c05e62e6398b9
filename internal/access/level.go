// Package access defines the fixed set of GitLab access levels a group can
// hold on a shared project, ordered from NO_ACCESS to OWNER.
package access

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when an access level name cannot be resolved
var ErrUnknownLevel = errors.New("unknown access level")

// Level is an access level tier. The zero value is NoAccess.
// The GitLab API numeric value is 10 × the enum index, see Value().
type Level int

const (
	NoAccess Level = iota
	Guest
	Reporter
	Developer
	Maintainer
	Owner
)

var levelNames = [...]string{
	NoAccess:   "NO_ACCESS",
	Guest:      "GUEST",
	Reporter:   "REPORTER",
	Developer:  "DEVELOPER",
	Maintainer: "MAINTAINER",
	Owner:      "OWNER",
}

// Levels returns all access levels in ascending order
func Levels() []Level {
	return []Level{NoAccess, Guest, Reporter, Developer, Maintainer, Owner}
}

// Parse resolves a level name (case-insensitive) to its Level.
// "Developer", "DEVELOPER" and "developer" all resolve to Developer.
func Parse(name string) (Level, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == normalized {
			return Level(i), nil
		}
	}
	return NoAccess, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// String returns the canonical upper-case level name
func (l Level) String() string {
	if l < NoAccess || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Value returns the numeric value the GitLab API expects (0, 10, ..., 50)
func (l Level) Value() int {
	return int(l) * 10
}
