package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
	"github.com/etnz/pantry/docs"
	"github.com/etnz/pantry/renderer"
	"github.com/google/shlex"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type shellCmd struct {
	raw bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the pantry from an interactive menu" }
func (*shellCmd) Usage() string {
	return `gro shell [-raw]

  Starts an interactive menu on the inventory (seeded with -seed). Type 'help'
  for the list of commands, 'quit' to leave. Changes are lost on exit, use
  'export' to keep them:

$ gro -seed groceries.jsonl shell
> remove Milk 0.5
> export
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return failure("loading pantry", err)
	}
	defer a.close()

	sh := newShell(a.store, a.book, os.Stdout)
	sh.raw = c.raw
	sh.logger = a.logger
	if err := sh.run(ctx, os.Stdin); err != nil {
		return failure("reading input", err)
	}
	return subcommands.ExitSuccess
}

// menuStore is what the menu needs from the inventory, beyond the ledger operations.
type menuStore interface {
	pantry.Store
	Expiring(r date.Range) []pantry.Grocery
	All() []pantry.Grocery
}

var _ menuStore = (*pantry.Inventory)(nil)

// shell is the interactive menu. It only parses input, calls the inventory
// and renders the result: it holds no business logic.
type shell struct {
	store  menuStore
	book   pantry.Cookbook
	out    io.Writer
	raw    bool
	prompt string
	today  func() date.Date
	logger *zap.Logger
}

func newShell(store menuStore, book pantry.Cookbook, out io.Writer) *shell {
	return &shell{
		store:  store,
		book:   book,
		out:    out,
		prompt: "> ",
		today:  date.Today,
		logger: zap.NewNop(),
	}
}

// verb is a shell command. args is its usage, used both for help and for
// arity checks: optional arguments are in brackets.
type verb struct {
	name string
	args string
	run  func(sh *shell, args []string) error
}

// min and max number of arguments.
func (v verb) arity() (int, int) {
	fields := strings.Fields(v.args)
	required := 0
	for _, f := range fields {
		if !strings.HasPrefix(f, "[") {
			required++
		}
	}
	return required, len(fields)
}

func (v verb) usage() string { return strings.TrimSpace(v.name + " " + v.args) }

var verbs = []verb{
	{"add", "<name> <quantity> <total> <unit> <expiry>", (*shell).add},
	{"remove", "<name> <quantity>", (*shell).remove},
	{"search", "<name>", (*shell).search},
	{"expired", "[<YYYY-MM-DD>]", (*shell).expired},
	{"soon", "<days>", (*shell).soon},
	{"value", "", (*shell).value},
	{"list", "", (*shell).list},
	{"available", "<name> <quantity> <unit>", (*shell).available},
	{"recipes", "", (*shell).recipes},
	{"recipe", "<name>", (*shell).recipe},
	{"export", "", (*shell).export},
	{"help", "", (*shell).help},
}

func findVerb(name string) (verb, bool) {
	for _, v := range verbs {
		if v.name == name {
			return v, true
		}
	}
	return verb{}, false
}

// run reads commands from in until 'quit', end of input or ctx is done.
func (sh *shell) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, sh.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := sh.exec(scanner.Text()); quit {
			return nil
		}
	}
}

// exec executes a single line and reports whether the shell must stop.
func (sh *shell) exec(line string) (quit bool) {
	args, err := splitArgs(line)
	if err != nil {
		sh.report(err)
		return false
	}
	if len(args) == 0 {
		return false
	}
	name, args := strings.ToLower(args[0]), args[1:]
	if name == "quit" || name == "exit" {
		return true
	}

	v, ok := findVerb(name)
	if !ok {
		fmt.Fprintf(sh.out, "Unknown command %q, type 'help' for the list of commands.\n", name)
		return false
	}
	if lo, hi := v.arity(); len(args) < lo || len(args) > hi {
		sh.report(fmt.Errorf("%w: usage: %s", pantry.ErrValidation, v.usage()))
		return false
	}
	sh.logger.Debug("shell command", zap.String("verb", v.name), zap.Strings("args", args))
	if err := v.run(sh, args); err != nil {
		sh.report(err)
	}
	return false
}

// report renders an error according to its kind.
func (sh *shell) report(err error) {
	switch {
	case errors.Is(err, pantry.ErrValidation):
		fmt.Fprintf(sh.out, "Invalid input: %v\n", err)
	case errors.Is(err, pantry.ErrNotFound):
		fmt.Fprintf(sh.out, "Nothing found: %v\n", err)
	case errors.Is(err, pantry.ErrInsufficientQuantity):
		fmt.Fprintf(sh.out, "Not enough stock: %v\n", err)
	default:
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
}

func (sh *shell) print(md string) error { return printMarkdown(sh.out, md, sh.raw) }

func (sh *shell) add(args []string) error {
	g, err := pantry.ParseGrocery(args[0], args[1], args[2], args[3], args[4])
	if err != nil {
		return err
	}
	if err := sh.store.Add(g); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Added %s.\n", g)
	return nil
}

func (sh *shell) remove(args []string) error {
	q, err := pantry.ParseQuantity(args[1])
	if err != nil {
		return err
	}
	if err := sh.store.Remove(args[0], q); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Removed %s of %s.\n", q, args[0])
	return nil
}

func (sh *shell) search(args []string) error {
	list, err := sh.store.Search(args[0])
	if err != nil {
		return err
	}
	return sh.print(renderer.Groceries(fmt.Sprintf("Search: %s", args[0]), list))
}

func (sh *shell) expired(args []string) error {
	day := sh.today().String()
	if len(args) > 0 {
		day = args[0]
	}
	md, err := expiredReport(sh.store, day)
	if err != nil {
		return err
	}
	return sh.print(md)
}

func (sh *shell) soon(args []string) error {
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 {
		return fmt.Errorf("%w: %q is not a number of days", pantry.ErrValidation, args[0])
	}
	r := date.NewRange(sh.today(), days)
	return sh.print(renderer.Groceries(fmt.Sprintf("Expiring %s", r), sh.store.Expiring(r)))
}

func (sh *shell) value([]string) error {
	return sh.print(renderer.Valuation("Total value", sh.store.TotalValuation()))
}

func (sh *shell) list([]string) error {
	list, err := sh.store.Sorted()
	if err != nil {
		return err
	}
	return sh.print(renderer.Groceries("Groceries", list))
}

func (sh *shell) available(args []string) error {
	q, err := pantry.ParseQuantity(args[1])
	if err != nil {
		return err
	}
	if sh.store.IsAvailable(args[0], q, args[2]) {
		fmt.Fprintf(sh.out, "Yes, %s %s of %s available.\n", q, args[2], args[0])
	} else {
		fmt.Fprintf(sh.out, "No, %s %s of %s not available.\n", q, args[2], args[0])
	}
	return nil
}

func (sh *shell) recipes([]string) error {
	md, err := cookbookReport(sh.book, sh.store)
	if err != nil {
		return err
	}
	return sh.print(md)
}

func (sh *shell) recipe(args []string) error {
	md, err := recipeReport(sh.book, sh.store, args[0])
	if err != nil {
		return err
	}
	return sh.print(md)
}

func (sh *shell) export([]string) error {
	return pantry.EncodeGroceries(sh.out, sh.store.All())
}

func (sh *shell) help([]string) error {
	doc, err := docs.GetTopic("shell")
	if err != nil {
		return err
	}
	return sh.print(doc)
}

// splitArgs splits line into words with POSIX shell quoting, so that names
// can contain spaces or quotes: "Olive oil", 'Olive oil' or 12\" pizza.
func splitArgs(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pantry.ErrValidation, err)
	}
	return args, nil
}
