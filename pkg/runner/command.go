package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/onboarding/pkg/domain"
)

// ErrUnknownCommand is returned for lines that are not a command.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind tells the runner what to do with a line.
type CommandKind string

const (
	CommandInput  CommandKind = "input"
	CommandStatus CommandKind = "status"
	CommandHelp   CommandKind = "help"
	CommandQuit   CommandKind = "quit"
)

// Command is a parsed line. Input is set for CommandInput.
type Command struct {
	Kind  CommandKind
	Input domain.Input
}

// ParseCommand parses one line. Option numbers are 1-based on the line and
// zero-based in the returned Select.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Kind: CommandInput, Input: domain.Confirm{}}, nil
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	case "c", "confirm", "next":
		return noArgs(Command{Kind: CommandInput, Input: domain.Confirm{}}, verb, args)
	case "s", "select":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%s needs an option number", verb)
		}
		return parseSelect(args[0])
	case "r", "rotate":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%s needs portrait or landscape", verb)
		}
		o, err := domain.ParseOrientation(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandInput, Input: domain.Rotate{Orientation: o}}, nil
	case "status":
		return noArgs(Command{Kind: CommandStatus}, verb, args)
	case "h", "help", "?":
		return noArgs(Command{Kind: CommandHelp}, verb, args)
	case "q", "quit", "exit":
		return noArgs(Command{Kind: CommandQuit}, verb, args)
	}

	if len(args) == 0 {
		if _, err := strconv.Atoi(verb); err == nil {
			return parseSelect(verb)
		}
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}

func parseSelect(arg string) (Command, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return Command{}, fmt.Errorf("invalid option number %q", arg)
	}
	return Command{Kind: CommandInput, Input: domain.Select{Index: n - 1}}, nil
}

func noArgs(cmd Command, verb string, args []string) (Command, error) {
	if len(args) > 0 {
		return Command{}, fmt.Errorf("%s takes no arguments", verb)
	}
	return cmd, nil
}

// HelpText lists the commands.
const HelpText = `Commands:
  confirm, c or <enter>       press the confirm button
  select N, s N or N          pick option N of a choice step
  rotate portrait|landscape   change orientation
  status                      print the current state
  help                        show this help
  quit                        leave the flow`
