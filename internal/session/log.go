// Package session records the turns of one conversation.
package session

import (
	"fmt"

	"github.com/rcliao/gamebot/internal/model"
)

// Log is an append-only list of turns. It is not safe for concurrent use;
// keep one Log per conversation.
type Log struct {
	turns []model.Turn
}

// Append records a turn.
func (l *Log) Append(role model.Role, text string) {
	l.turns = append(l.turns, model.Turn{Role: role, Text: text})
}

// Turns returns a copy of every recorded turn in order.
func (l *Log) Turns() []model.Turn {
	return append([]model.Turn(nil), l.turns...)
}

// TurnCount returns the number of recorded turns.
func (l *Log) TurnCount() int {
	return len(l.turns)
}

// Count returns the number of turns recorded for role.
func (l *Log) Count(role model.Role) int {
	n := 0
	for _, t := range l.turns {
		if t.Role == role {
			n++
		}
	}
	return n
}

// Summary describes how many turns each side has contributed.
func (l *Log) Summary() string {
	if len(l.turns) == 0 {
		return "No conversation yet!"
	}
	return fmt.Sprintf("Conversation Summary: %d total messages (%d from user, %d from bot)",
		len(l.turns), l.Count(model.RoleUser), l.Count(model.RoleBot))
}
