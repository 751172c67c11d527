package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
)

type CommandType string

const (
	CmdAdd      CommandType = "add"
	CmdList     CommandType = "list"
	CmdDelete   CommandType = "delete"
	CmdTimezone CommandType = "timezone"
)

// Command is a parsed text command with its arguments already validated.
type Command struct {
	Type CommandType
	Raw  string

	Hour   int
	Minute int

	Index int
	All   bool

	// Offset is nil when timezone is asked without an argument
	Offset *int
}

func Parse(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty command", domain.ErrUnknownCommand)
	}

	cmd := &Command{Raw: text}
	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "add", "scheduledaily":
		cmd.Type = CmdAdd
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: missing time", domain.ErrInvalidTimeFormat)
		}
		h, m, err := domain.ParseTime(args[0])
		if err != nil {
			return nil, err
		}
		cmd.Hour, cmd.Minute = h, m

	case "list", "ls", "showschedule":
		cmd.Type = CmdList

	case "delete", "rm", "deleteschedule":
		cmd.Type = CmdDelete
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: missing index", domain.ErrInvalidIndex)
		}
		if strings.EqualFold(args[0], "all") {
			cmd.All = true
			break
		}
		i, err := strconv.Atoi(args[0])
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidIndex, args[0])
		}
		cmd.Index = i

	case "timezone", "tz":
		cmd.Type = CmdTimezone
		if len(args) == 0 {
			break
		}
		offset, err := domain.ParseOffset(args[0])
		if err != nil {
			return nil, err
		}
		cmd.Offset = &offset

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, parts[0])
	}

	return cmd, nil
}
