// Package console is a line-oriented interactive prompt over the mbti core.
//
// Each line is split shell-style, so quoted arguments survive:
//
//	mbti> derive intp "  esfj "
//	mbti> describe ni
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/teranos/mbti/display"
	"github.com/teranos/mbti/logger"
	"github.com/teranos/mbti/mbti"
)

const menuLine = "><><><><><><><><><><><><"

// Console reads commands from in and writes results to out
type Console struct {
	in     io.Reader
	out    io.Writer
	prompt string
	logger *zap.SugaredLogger

	infoPrinter  *pterm.PrefixPrinter
	warnPrinter  *pterm.PrefixPrinter
	errorPrinter *pterm.PrefixPrinter
}

// New creates a console. An empty prompt falls back to "mbti> ".
func New(in io.Reader, out io.Writer, prompt string, log *zap.SugaredLogger) *Console {
	if prompt == "" {
		prompt = "mbti> "
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Console{
		in:           in,
		out:          out,
		prompt:       prompt,
		logger:       log,
		infoPrinter:  pterm.Info.WithWriter(out),
		warnPrinter:  pterm.Warning.WithWriter(out),
		errorPrinter: pterm.Error.WithWriter(out),
	}
}

// Run prints the menu and executes lines until quit, EOF or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.printMenu()

	scanner := bufio.NewScanner(c.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(c.out, c.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		if quit := c.Execute(scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one input line and reports whether the console should stop.
func (c *Console) Execute(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	args, err := shellquote.Split(line)
	if err != nil {
		c.logger.Debugw("Quote parsing failed, using simple split", "line", line, logger.FieldError, err)
		args = strings.Fields(line)
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "quit", "exit", "q":
		c.infoPrinter.Println("bye")
		return true
	case "help", "?", "menu":
		c.printMenu()
	case "list", "ls":
		c.list()
	case "derive", "type":
		if len(rest) == 0 {
			c.warnPrinter.Println("usage: derive <code>...")
			return false
		}
		for _, code := range rest {
			c.derive(code)
		}
	case "describe":
		if len(rest) == 0 {
			c.warnPrinter.Println("usage: describe <entry>  (e.g. describe ni)")
			return false
		}
		for _, entry := range rest {
			c.describe(entry)
		}
	default:
		if len(args) == 1 && len(mbti.Normalize(cmd)) == mbti.CodeLength {
			c.derive(cmd)
			return false
		}
		c.warnPrinter.Printfln("unknown command %q, type help for the menu", args[0])
	}
	return false
}

func (c *Console) printMenu() {
	fmt.Fprintf(c.out, "%s\n|| MENU\n%s\n", menuLine, menuLine)
	fmt.Fprintln(c.out, "  derive <code>...   cognitive function stack (or just type the code)")
	fmt.Fprintln(c.out, "  list               all sixteen types")
	fmt.Fprintln(c.out, "  describe <entry>   full name of a stack entry such as ni")
	fmt.Fprintln(c.out, "  help               this menu")
	fmt.Fprintln(c.out, "  quit               leave")
}

func (c *Console) derive(code string) {
	res, err := mbti.Derive(code)
	if err != nil {
		c.errorPrinter.Println(err.Error())
		return
	}
	if err := display.RenderResult(c.out, res); err != nil {
		c.errorPrinter.Println(err.Error())
	}
}

func (c *Console) list() {
	codes := mbti.AllCodes()
	results := make([]mbti.Result, 0, len(codes))
	for _, code := range codes {
		results = append(results, mbti.MustDerive(code))
	}
	if err := display.RenderList(c.out, results); err != nil {
		c.errorPrinter.Println(err.Error())
	}
}

func (c *Console) describe(entry string) {
	name, err := mbti.DescribeFunction(entry)
	if err != nil {
		c.errorPrinter.Println(err.Error())
		return
	}
	c.infoPrinter.Printfln("%s: %s", mbti.Normalize(entry), name)
}
