package script

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Result is written as one JSON line per op.
type Result struct {
	Line     int                    `json:"line"`
	Op       string                 `json:"op"`
	Contact  *types.MobileContact   `json:"contact,omitempty"`
	Contacts *[]types.MobileContact `json:"contacts,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// Summary counts what a Run did.
type Summary struct {
	Applied int
	Failed  int
}

// Run applies ops to reg in order and writes a Result per op to w. Rule
// violations are recorded in the Result and the run goes on; any other
// error stops the run and is returned.
func Run(reg types.Registry, ops []Op, w io.Writer, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	enc := json.NewEncoder(w)

	var sum Summary
	for _, op := range ops {
		res, err := apply(reg, op)
		if err != nil {
			if !types.IsRuleViolation(err) {
				return sum, fmt.Errorf("line %d: %w", op.Line, err)
			}
			res.Error = err.Error()
			sum.Failed++
		} else {
			sum.Applied++
		}

		log.Debug("script line applied",
			zap.String("event", logger.EventScriptLine),
			zap.Int("line", op.Line),
			zap.String("op", op.Name),
			zap.Bool("ok", err == nil))

		if err := enc.Encode(res); err != nil {
			return sum, fmt.Errorf("writing result: %w", err)
		}
	}
	return sum, nil
}

func apply(reg types.Registry, op Op) (Result, error) {
	res := Result{Line: op.Line, Op: op.Name}
	var err error

	switch op.Name {
	case OpCreate:
		res.Contact, err = reg.Create(*op.Contact)
	case OpUpdate:
		res.Contact, err = reg.Update(*op.ID, *op.Contact)
	case OpDelete:
		if op.ID != nil {
			err = reg.DeleteByID(*op.ID)
		} else {
			err = reg.DeleteByPhoneNumber(*op.PhoneNumber)
		}
	case OpGet:
		if op.ID != nil {
			res.Contact, err = reg.GetByID(*op.ID)
		} else {
			res.Contact, err = reg.GetByPhoneNumber(*op.PhoneNumber)
		}
	case OpList:
		var all []types.MobileContact
		all, err = reg.GetAll()
		if err == nil {
			res.Contacts = &all
		}
	default:
		err = fmt.Errorf("%w %q", ErrUnknownOp, op.Name)
	}
	return res, err
}
