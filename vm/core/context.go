package core

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewContext creates context for a single instruction of the program.
func NewContext(program Pubkey, meter *ComputeMeter, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{ProgramID: program, Meter: meter, logger: logger}
}

// Context exposes runtime facilities to the executing program.
type Context struct {
	// ProgramID is the id of the executing program.
	ProgramID Pubkey
	Meter     *ComputeMeter

	logger *zap.Logger
	logs   []string
	err    error
}

// Consume compute units from the transaction budget.
func (c *Context) Consume(units uint64) error {
	if err := c.Meter.Consume(units); err != nil {
		c.fail(err)
		return err
	}
	return nil
}

// Log records program output. Every line costs LOG units.
func (c *Context) Log(format string, args ...any) {
	if c.err != nil {
		return
	}
	if err := c.Meter.Consume(LOG); err != nil {
		c.fail(err)
		return
	}
	msg := strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", " ")
	c.logs = append(c.logs, "Program log: "+msg)
	c.logger.Debug("program log", zap.Stringer("program", c.ProgramID), zap.String("msg", msg))
}

// Logs returns lines recorded by the program.
func (c *Context) Logs() []string {
	return c.logs
}

// Err returns the first runtime error that happened while the program was executing.
func (c *Context) Err() error {
	return c.err
}

func (c *Context) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
