package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cantstop/board"
	"cantstop/engine"
	"cantstop/game"

	"golang.org/x/exp/slices"
)

// Console plays a human through a terminal. It asks for names and decisions, and
// narrates turns when registered as an observer.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	view func() board.Grid
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ShowBoard makes the console print the board after every turn.
func (c *Console) ShowBoard(view func() board.Grid) {
	c.view = view
}

func (c *Console) Introduce() {
	c.printf("Welcome to Can't Stop, a push your luck game.\n\n")
	c.printf("This is a simplified version for two players.\n")
	c.printf("Roll four dice, pair two of them and lock the sum as your target.\n")
	c.printf("Every roll that shows your target again moves you up one square.\n")
	c.printf("Stop whenever you like to keep your progress, but if a roll misses\n")
	c.printf("your target you lose everything gained this turn.\n\n")
	c.printf("Let's get started!\n\n")
}

func (c *Console) ReadName(prompt string) (string, error) {
	c.printf("%s\n", prompt)
	return c.readLine()
}

func (c *Console) Notify(msg string) {
	c.printf("%s\n", msg)
}

func (c *Console) ChooseSum(d game.Decision) (int, error) {
	for {
		c.printf("%s, choose any two numbers and add them together.\n", d.Player)
		c.printf("This will be your target number for the rest of the game: \n")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		sum, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.printf("Invalid data: %q is not a number, please try again.\n\n", strings.TrimSpace(line))
			continue
		}
		if !slices.Contains(d.ValidSums, sum) {
			c.printf("%d is not a valid sum. Please try again.\n\n", sum)
			continue
		}
		return sum, nil
	}
}

func (c *Console) ContinueRolling(d game.Decision) (bool, error) {
	for {
		c.printf("Continue rolling the dice? Y/N: \n")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		c.printf("Invalid input. Please enter Y or N. \n\n")
	}
}

// OnTurnEvent narrates a step of a turn.
func (c *Console) OnTurnEvent(e game.TurnEvent) {
	switch e.Kind {
	case game.Rolled:
		c.printf("%s, you rolled the following numbers: %v\n\n", e.Player, e.Roll[:])
	case game.Scored:
		c.printf("%s, you chose the number %d\n", e.Player, e.Target.Sum)
		c.printf("You moved up to the square %d.\n\n", e.Target.Progress)
	case game.Busted:
		c.printf("Sorry %s, your target number %d is not valid this round.\n\n", e.Player, e.Target.Sum)
	case game.Stopped:
		c.printf("The result is: %d on square %d\n\n", e.Target.Sum, e.Target.Progress)
	}
}

// OnTurnResult reports what the turn did to the board and the game.
func (c *Console) OnTurnResult(r engine.TurnResult) {
	switch r.Board {
	case engine.BoardSkipped:
		c.printf("%s, you did not score.\n", r.Player)
		c.printf("The board will not be updated.\n\n")
	case engine.BoardUpdated:
		c.printf("Board updated successfully.\n\n")
	case engine.BoardFailed:
		c.printf("The board could not be updated, the game goes on.\n\n")
	}

	if c.view != nil {
		if err := board.Render(c.out, c.view()); err != nil {
			c.printf("could not draw the board: %v\n", err)
		}
		c.printf("\n")
	}

	if r.Won {
		c.printf("Congratulations %s!! You won the Game!!\n", r.Player)
		c.printf("Be proud of your awesome victory;\n")
		c.printf("it's now on display for everyone to admire!\n")
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
