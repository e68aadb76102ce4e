package player

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cantstop/meta"
)

var (
	ErrNameEmpty   = errors.New("blank space is not a valid name")
	ErrNameTooLong = fmt.Errorf("name too long, it should be a maximum of %d characters", meta.MaxNameLength)
	ErrNameTaken   = errors.New("name already taken by the other player")
)

// NameInput supplies raw names typed by the players.
type NameInput interface {
	ReadName(prompt string) (string, error)
	Notify(msg string)
}

// ValidateName checks a display name as typed. Names are not trimmed or truncated.
func ValidateName(name string, taken ...string) error {
	if utf8.RuneCountInString(name) > meta.MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(name) == "" {
		return ErrNameEmpty
	}
	for _, other := range taken {
		if name == other {
			return ErrNameTaken
		}
	}
	return nil
}

// ReadPlayerNames asks for two names, asking again until each one is valid.
func ReadPlayerNames(in NameInput) ([2]string, error) {
	var names [2]string
	prompts := [2]string{"Player one, please enter your name: ", "Player two, please enter your name: "}
	for i, prompt := range prompts {
		for {
			name, err := in.ReadName(prompt)
			if err != nil {
				return names, fmt.Errorf("read name: %w", err)
			}
			if err := ValidateName(name, names[:i]...); err != nil {
				in.Notify("Error: " + err.Error() + ".")
				continue
			}
			names[i] = name
			break
		}
	}
	return names, nil
}
