package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/game"
)

// CLI is the interactive agent: it renders the position, prompts for a
// column and re-prompts until the input parses as an integer on the
// board. State-dependent rejections, a full column say, come back from
// the engine as another SelectAction call.
type CLI struct {
	token game.Token
	in    *bufio.Reader
	out   io.Writer
}

// NewCLI returns an interactive agent reading from in and writing to
// out.
func NewCLI(token game.Token, in io.Reader, out io.Writer) *CLI {
	return &CLI{token: token, in: bufio.NewReader(in), out: out}
}

func (c *CLI) Token() game.Token { return c.token }

func (c *CLI) SelectAction(view game.StateView) game.Action {
	RenderBoard(c.out, view)
	for {
		fmt.Fprintf(c.out, "%s to play. ", c.token)
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			panic(err)
		}
		column, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Input could not be converted to an integer.")
			continue
		}
		if column < 1 || column > view.Columns {
			fmt.Fprintln(c.out, "Selected column lies outside the board. Columns are indexed from 1.")
			continue
		}
		return game.Action{Kind: game.Place, Column: column}
	}
}

// NotifyOutcome prints this agent's own result.
func (c *CLI) NotifyOutcome(outcome *game.Outcome) {
	fmt.Fprintf(c.out, "%s: %s\n", c.token, outcome.ResultOf(c.token))
}
