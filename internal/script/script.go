package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/haileyok/followgraph/followgraph"
	"github.com/haileyok/followgraph/internal/helpers"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
)

type command struct {
	args int
	run  func(n *followgraph.Network, args []string) string
}

var commands = map[string]command{
	"add": {1, func(n *followgraph.Network, a []string) string {
		return strconv.FormatBool(n.AddUser(a[0]))
	}},
	"follow": {2, func(n *followgraph.Network, a []string) string {
		return strconv.FormatBool(n.AddFollowee(a[0], a[1]))
	}},
	"unfollow": {2, func(n *followgraph.Network, a []string) string {
		return strconv.FormatBool(n.RemoveFollowee(a[0], a[1]))
	}},
	"follows": {2, func(n *followgraph.Network, a []string) string {
		u := n.GetUser(a[0])
		return strconv.FormatBool(u != nil && u.Follows(a[1]))
	}},
	"mutual": {2, func(n *followgraph.Network, a []string) string {
		count, ok := n.CountMutual(a[0], a[1])
		if !ok {
			return helpers.NoneName
		}
		return strconv.Itoa(count)
	}},
	"friends": {2, func(n *followgraph.Network, a []string) string {
		return strconv.FormatBool(n.AreFriends(a[0], a[1]))
	}},
	"followers": {1, func(n *followgraph.Network, a []string) string {
		return strings.Join(n.Followers(a[0]), " ")
	}},
	"recommend": {1, func(n *followgraph.Network, a []string) string {
		return helpers.OptionalName(n.RecommendWhoToFollow(a[0]))
	}},
	"popular": {0, func(n *followgraph.Network, _ []string) string {
		return helpers.OptionalName(n.MostPopularUser())
	}},
	"print": {0, func(n *followgraph.Network, _ []string) string {
		return n.String()
	}},
}

// Runner executes follow graph commands, one per line, against a network.
type Runner struct {
	net    *followgraph.Network
	out    io.Writer
	logger *slog.Logger
}

func NewRunner(net *followgraph.Network, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		net:    net,
		out:    out,
		logger: logger,
	}
}

// Run executes every line of in and stops at the first bad command.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNum++

		res, skip, err := r.Exec(scanner.Text())
		if err != nil {
			return helpers.InputError(lineNum, err, strings.TrimSpace(scanner.Text()))
		}
		if skip {
			continue
		}

		if _, err := fmt.Fprintln(r.out, res); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

// Exec runs a single line. skip is true for blank lines and comments.
func (r *Runner) Exec(line string) (res string, skip bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", true, nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return "", false, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if len(args) != cmd.args {
		return "", false, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, cmd.args, len(args))
	}

	res = cmd.run(r.net, args)
	r.logger.Debug("executed command", "command", name, "args", args, "result", res)
	return res, false, nil
}
