// Package script reads and runs JSONL scripts of registry operations. One
// script runs against one Registry in one process, which is how a CLI
// session works when nothing is persisted.
package script

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Operation names.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpGet    = "get"
	OpList   = "list"
)

// Script parse errors.
var (
	ErrUnknownOp      = errors.New("unknown op")
	ErrMissingContact = errors.New("contact is required")
	ErrMissingID      = errors.New("id is required")
	ErrKeyChoice      = errors.New("exactly one of id or phoneNumber is required")
	ErrExtraField     = errors.New("field not allowed for op")
	ErrTrailingData   = errors.New("trailing data after op")
)

// maxLineSize bounds a single script line.
const maxLineSize = 1 << 20

// Op is one line of a script.
type Op struct {
	Line        int                     `json:"-"`
	Name        string                  `json:"op"`
	ID          *int64                  `json:"id,omitempty"`
	PhoneNumber *string                 `json:"phoneNumber,omitempty"`
	Contact     *types.MobileContactDTO `json:"contact,omitempty"`
}

// validate checks that the op carries exactly the fields its name needs.
func (o Op) validate() error {
	switch o.Name {
	case OpCreate:
		if o.Contact == nil {
			return ErrMissingContact
		}
		if o.ID != nil {
			return o.extraField("id")
		}
		if o.PhoneNumber != nil {
			return o.extraField("phoneNumber")
		}
	case OpUpdate:
		if o.ID == nil {
			return ErrMissingID
		}
		if o.Contact == nil {
			return ErrMissingContact
		}
		if o.PhoneNumber != nil {
			return o.extraField("phoneNumber")
		}
	case OpDelete, OpGet:
		if (o.ID == nil) == (o.PhoneNumber == nil) {
			return ErrKeyChoice
		}
		if o.Contact != nil {
			return o.extraField("contact")
		}
	case OpList:
		switch {
		case o.ID != nil:
			return o.extraField("id")
		case o.PhoneNumber != nil:
			return o.extraField("phoneNumber")
		case o.Contact != nil:
			return o.extraField("contact")
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, o.Name)
	}
	return nil
}

func (o Op) extraField(name string) error {
	return fmt.Errorf("%w %s: %s", ErrExtraField, o.Name, name)
}

// Parse reads one op per line. Blank lines and lines starting with # are
// skipped. The first malformed line stops parsing with an error naming its
// line number.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(text))
		dec.DisallowUnknownFields()
		var op Op
		if err := dec.Decode(&op); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, fmt.Errorf("line %d: %w", line, ErrTrailingData)
		}
		if err := op.validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: reading script: %w", line+1, err)
	}
	return ops, nil
}
