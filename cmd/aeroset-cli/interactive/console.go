// Package interactive provides the interactive command-line interface
// for the settings console.
package interactive

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/aeroset/aeroset-go/pkg/auditlog"
	"github.com/aeroset/aeroset-go/pkg/catalog"
	"github.com/aeroset/aeroset-go/pkg/group"
	"github.com/aeroset/aeroset-go/pkg/inspect"
	"github.com/aeroset/aeroset-go/pkg/setting"
	"github.com/aeroset/aeroset-go/pkg/snapshot"
)

// Console handles interactive mode for aeroset-cli.
type Console struct {
	sys       *catalog.System
	store     *snapshot.Store
	audit     auditlog.Logger
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	rl        *readline.Instance

	// Active selection for scoped settings
	profile     int
	rateProfile int
}

// New creates a new interactive console.
func New(sys *catalog.System, store *snapshot.Store, audit auditlog.Logger) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "aeroset> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		sys:       sys,
		store:     store,
		audit:     audit,
		inspector: inspect.NewInspector(sys.Accessor),
		formatter: inspect.NewFormatter(),
		rl:        rl,
	}, nil
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "get", "g":
			c.cmdGet(args)

		case "set", "s":
			c.cmdSet(args)

		case "list", "l":
			c.cmdList(args)

		case "diff", "d":
			c.cmdDiff()

		case "profile":
			c.cmdProfile(args)

		case "rateprofile":
			c.cmdRateProfile(args)

		case "save":
			c.cmdSave()

		case "load":
			c.cmdLoad()

		case "defaults":
			c.cmdDefaults()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Settings Console Commands:
  Values:
    get <name>           - Show a setting's value and constraint
    set <name> <value>   - Change a setting (number or choice label)
    list [prefix]        - List settings, optionally filtered by prefix
    diff                 - Show settings that differ from defaults

  Profiles:
    profile [n]          - Show or select the active tuning profile
    rateprofile [n]      - Show or select the active rate profile

  Persistence:
    save                 - Save all values to the snapshot file
    load                 - Restore values from the snapshot file
    defaults             - Reset every setting to its default

  General:
    help                 - Show this help
    quit                 - Exit console`)
}

// instanceFor maps a setting's scope to the active selection.
func (c *Console) instanceFor(s *setting.Setting) int {
	switch s.Scope() {
	case group.ScopeProfile:
		return c.profile
	case group.ScopeRateProfile:
		return c.rateProfile
	default:
		return setting.NoProfile
	}
}

// cmdGet handles the get command.
func (c *Console) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: get <name>")
		fmt.Fprintln(c.rl.Stdout(), "  Example: get gyro_sync_denom")
		return
	}

	row, err := c.inspector.Get(args[0], c.profile, c.rateProfile)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.rl.Stdout(), "%s = %s\n", row.Name, row.Value)
	fmt.Fprintf(c.rl.Stdout(), "  type: %s  scope: %s\n", row.Type, row.Scope)
	fmt.Fprintf(c.rl.Stdout(), "  allowed: %s\n", row.Constraint)
}

// cmdSet handles the set command.
func (c *Console) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: set <name> <value>")
		fmt.Fprintln(c.rl.Stdout(), "  Example: set gyro_sync_denom 8")
		fmt.Fprintln(c.rl.Stdout(), "  Example: set align_gyro CW90")
		return
	}

	s, err := c.sys.Registry.Find(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	value, err := c.parseValue(s, args[1])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	instance := c.instanceFor(s)

	event := auditlog.Event{
		Timestamp: time.Now().UTC(),
		Setting:   s.Name(),
		Origin:    auditlog.OriginOperator,
		NewValue:  value,
	}
	if instance != setting.NoProfile {
		idx := instance
		event.Profile = &idx
	}
	if old, err := c.sys.Accessor.Read(s, instance); err == nil {
		event.OldValue = old
	}

	if err := c.sys.Accessor.Write(s, instance, value); err != nil {
		event.Outcome = auditlog.OutcomeRejected
		event.Reason = err.Error()
		c.audit.Log(event)
		fmt.Fprintf(c.rl.Stdout(), "Rejected: %v\n", err)
		return
	}

	event.Outcome = auditlog.OutcomeApplied
	c.audit.Log(event)

	label, err := c.sys.Accessor.ReadLabel(s, instance)
	if err != nil {
		label = strconv.FormatInt(value, 10)
	}
	fmt.Fprintf(c.rl.Stdout(), "%s = %s\n", s.Name(), label)
}

// parseValue interprets the operator's input. Enumerated settings
// accept either a choice label or a bare ordinal; numeric settings
// accept decimal values.
func (c *Console) parseValue(s *setting.Setting, input string) (int64, error) {
	if table, isEnum := s.Constraint().EnumTable(); isEnum {
		if ordinal, err := c.sys.Enums.OrdinalOf(table, input); err == nil {
			return int64(ordinal), nil
		}
	}

	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		if s.Constraint().IsEnum() {
			return 0, fmt.Errorf("%q is not a valid choice for %s (see 'get %s')", input, s.Name(), s.Name())
		}
		return 0, fmt.Errorf("%q is not a number", input)
	}
	return value, nil
}

// cmdList handles the list command.
func (c *Console) cmdList(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	rows, err := c.inspector.List(prefix, c.profile, c.rateProfile)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprint(c.rl.Stdout(), c.formatter.FormatTable(rows))
}

// cmdDiff handles the diff command.
func (c *Console) cmdDiff() {
	changes, err := c.inspector.Diff(c.profile, c.rateProfile)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	if len(changes) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "All settings match their defaults")
		return
	}

	for _, change := range changes {
		fmt.Fprintf(c.rl.Stdout(), "  %s = %s (default %s)\n",
			change.Name, change.Current, change.Default)
	}
}

// cmdProfile handles the profile command.
func (c *Console) cmdProfile(args []string) {
	layout, err := c.sys.Groups.Layout(catalog.GroupPidProfile)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	if len(args) == 0 {
		fmt.Fprintf(c.rl.Stdout(), "Active profile: %d (of %d)\n", c.profile, layout.Count)
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= layout.Count {
		fmt.Fprintf(c.rl.Stdout(), "Profile must be 0..%d\n", layout.Count-1)
		return
	}
	c.profile = n
	fmt.Fprintf(c.rl.Stdout(), "Active profile: %d\n", c.profile)
}

// cmdRateProfile handles the rateprofile command.
func (c *Console) cmdRateProfile(args []string) {
	layout, err := c.sys.Groups.Layout(catalog.GroupRateProfile)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	if len(args) == 0 {
		fmt.Fprintf(c.rl.Stdout(), "Active rate profile: %d (of %d)\n", c.rateProfile, layout.Count)
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= layout.Count {
		fmt.Fprintf(c.rl.Stdout(), "Rate profile must be 0..%d\n", layout.Count-1)
		return
	}
	c.rateProfile = n
	fmt.Fprintf(c.rl.Stdout(), "Active rate profile: %d\n", c.rateProfile)
}

// cmdSave handles the save command.
func (c *Console) cmdSave() {
	snap, err := snapshot.Capture(c.sys.Accessor)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	if err := c.store.Save(snap); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Saved %d entries (snapshot %s)\n", len(snap.Entries), snap.ID)
}

// cmdLoad handles the load command.
func (c *Console) cmdLoad() {
	snap, err := c.store.Load()
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if snap == nil {
		fmt.Fprintln(c.rl.Stdout(), "No snapshot saved yet")
		return
	}

	report, err := snapshot.Apply(snap, c.sys.Accessor, c.audit)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.rl.Stdout(), "Applied %d entries\n", report.Applied)
	for _, skip := range report.Skipped {
		fmt.Fprintf(c.rl.Stdout(), "  skipped %s: %s\n", skip.Entry.Name, skip.Reason)
	}
}

// cmdDefaults handles the defaults command.
func (c *Console) cmdDefaults() {
	if err := c.sys.Accessor.ApplyDefaults(); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	c.audit.Log(auditlog.Event{
		Timestamp: time.Now().UTC(),
		Setting:   "*",
		Outcome:   auditlog.OutcomeReset,
		Origin:    auditlog.OriginOperator,
	})
	fmt.Fprintln(c.rl.Stdout(), "All settings reset to defaults")
}
