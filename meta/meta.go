// meta/meta.go
package meta

// NumDice is the number of dice thrown on every roll.
const NumDice = 4

// DieFaces is the number of faces on each die.
const DieFaces = 6

// MinSum and MaxSum bound the sum of two dice.
const (
	MinSum = 2
	MaxSum = 12
)

// MaxNameLength is the longest display name a player may pick.
const MaxNameLength = 20

// BoardAttempts is how many times a board write is tried before giving up on it.
const BoardAttempts = 2

// RecentTurns is how many turn results the spectator feed keeps.
const RecentTurns = 50
