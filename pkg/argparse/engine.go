// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"log/slog"

	"github.com/yeetrun/argspec/pkg/schema"
)

// Engine parses argument vectors against a validated schema. It is
// immutable after New returns and safe for concurrent use.
type Engine struct {
	schema   *schema.Schema
	commands map[string]*commandIndex
	logger   *slog.Logger
}

// commandIndex maps every option name and alias of one command, keyed under
// the schema's case rule, to the option's position in Command.Options.
type commandIndex struct {
	cmd    *schema.Command
	byName map[string]int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing of each parse.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New validates s and returns an engine for it. A schema error is returned
// as-is (wrapped) and no engine is created.
func New(s schema.Schema, opts ...Option) (*Engine, error) {
	vs, err := schema.Validate(s)
	if err != nil {
		return nil, fmt.Errorf("argparse: %w", err)
	}
	e := &Engine{
		schema:   vs,
		commands: make(map[string]*commandIndex, len(vs.Commands)),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	for i := range vs.Commands {
		c := &vs.Commands[i]
		ci := &commandIndex{cmd: c, byName: make(map[string]int)}
		for j := range c.Options {
			for _, n := range c.Options[j].Names() {
				ci.byName[vs.Key(n)] = j
			}
		}
		e.commands[vs.Key(c.Name)] = ci
	}
	return e, nil
}

// Schema returns a copy of the validated schema, including the HELP
// command.
func (e *Engine) Schema() schema.Schema {
	return e.schema.Clone()
}

// Parse runs one full pass over argv, which must not include the program
// name. The first element selects the command. On success the result holds a
// value for every enabled option of that command; otherwise the error is an
// *Error describing the first problem found.
func (e *Engine) Parse(argv []string) (*Result, error) {
	ci, err := e.selectCommand(argv)
	if err != nil {
		return nil, err
	}
	log := e.logger.With("command", ci.cmd.Name)

	p := newParseState(e.schema, ci)
	var sc scanner
	for i, tok := range argv[1:] {
		class := sc.next(tok)
		log.Debug("token", "index", i+1, "token", tok, "class", class, "scan", sc.mode)
		switch class {
		case tokStartScan, tokStopScan:
			continue
		case tokEmptyOption:
			return nil, errorf(KindMalformedOption, ci.cmd.Name, "", tok, "empty option name %q", tok)
		case tokOption:
			err = p.activate(tok[len(schema.OptionPrefix):], tok)
		case tokLiteral:
			v := tok
			if e.schema.StripQuotes {
				v = unquote(tok)
			}
			err = p.collect(v, tok)
		}
		if err != nil {
			log.Debug("rejected", "token", tok, "err", err)
			return nil, err
		}
	}
	if err := p.check(); err != nil {
		log.Debug("rejected", "err", err)
		return nil, err
	}
	return p.result(), nil
}

func (e *Engine) selectCommand(argv []string) (*commandIndex, error) {
	if len(argv) == 0 {
		return nil, errorf(KindNoCommand, "", "", "", "no command specified")
	}
	sel := argv[0]
	if e.schema.StripQuotes {
		sel = unquote(sel)
	}
	if sel == "" {
		return nil, errorf(KindNoCommand, "", "", argv[0], "no command specified")
	}
	ci, ok := e.commands[e.schema.Key(sel)]
	if !ok {
		return nil, errorf(KindUnknownCommand, "", "", argv[0], "unknown command %q", sel)
	}
	if ci.cmd.Disabled {
		return nil, errorf(KindDisabledCommand, ci.cmd.Name, "", argv[0], "command %q is disabled", ci.cmd.Name)
	}
	return ci, nil
}
