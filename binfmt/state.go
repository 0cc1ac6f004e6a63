// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binfmt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luxfi/zkvm/digest"
)

// ErrInvalidExitCode reports an unrecognized (sys, user) exit-code pair.
var ErrInvalidExitCode = errors.New("invalid exit code")

// SystemState is the zkVM machine state at a segment boundary: the RISC-V
// program counter and a Merkle commitment to memory.
type SystemState struct {
	PC         uint32        `json:"pc" cbor:"pc"`
	MerkleRoot digest.Digest `json:"merkle_root" cbor:"merkle_root"`
}

// Digest returns the tagged-hash commitment to the state.
func (s SystemState) Digest() digest.Digest {
	return TaggedStruct("risc0.SystemState", []digest.Digest{s.MerkleRoot}, []uint32{s.PC})
}

// DecodeSystemState reads a state from the flat word form: the memory root
// as sixteen SHA half words followed by the program counter.
func DecodeSystemState(r *Reader) (SystemState, error) {
	root, err := ReadShaHalfs(r)
	if err != nil {
		return SystemState{}, err
	}
	pc, err := r.PopFront()
	if err != nil {
		return SystemState{}, err
	}
	return SystemState{PC: pc, MerkleRoot: root}, nil
}

// Encode appends the flat word form of the state.
func (s SystemState) Encode(flat []uint32) []uint32 {
	flat = WriteShaHalfs(flat, s.MerkleRoot)
	return append(flat, s.PC)
}

// ExitCodeKind enumerates the ways a zkVM execution can end.
type ExitCodeKind uint8

const (
	// Halted means the program ran to completion and terminated.
	Halted ExitCodeKind = iota
	// Paused means the program requested a pause; execution may resume.
	Paused
	// SystemSplit marks the boundary between two continuation segments.
	SystemSplit
	// SessionLimit means the session cycle budget was exhausted.
	SessionLimit
)

// ExitCode is the typed exit status of an execution, carrying a user code
// for the Halted and Paused kinds.
type ExitCode struct {
	Kind ExitCodeKind
	User uint32
}

// ExitHalted returns a Halted exit code with the given user code.
func ExitHalted(user uint32) ExitCode {
	return ExitCode{Kind: Halted, User: user}
}

// ExitPaused returns a Paused exit code with the given user code.
func ExitPaused(user uint32) ExitCode {
	return ExitCode{Kind: Paused, User: user}
}

// ExitSystemSplit returns the segment-boundary exit code.
func ExitSystemSplit() ExitCode {
	return ExitCode{Kind: SystemSplit}
}

// ExitSessionLimit returns the session-limit exit code.
func ExitSessionLimit() ExitCode {
	return ExitCode{Kind: SessionLimit}
}

// ExitCodeFromPair decodes the wire (sys, user) pair.
func ExitCodeFromPair(sys, user uint32) (ExitCode, error) {
	switch sys {
	case 0:
		return ExitHalted(user), nil
	case 1:
		return ExitPaused(user), nil
	case 2:
		switch user {
		case 0:
			return ExitSystemSplit(), nil
		case 2:
			return ExitSessionLimit(), nil
		}
	}
	return ExitCode{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidExitCode, sys, user)
}

// Pair encodes the exit code as its wire (sys, user) pair.
func (e ExitCode) Pair() (uint32, uint32) {
	switch e.Kind {
	case Halted:
		return 0, e.User
	case Paused:
		return 1, e.User
	case SystemSplit:
		return 2, 0
	default:
		return 2, 2
	}
}

// String names the exit code for diagnostics.
func (e ExitCode) String() string {
	switch e.Kind {
	case Halted:
		return fmt.Sprintf("Halted(%d)", e.User)
	case Paused:
		return fmt.Sprintf("Paused(%d)", e.User)
	case SystemSplit:
		return "SystemSplit"
	default:
		return "SessionLimit"
	}
}

// MarshalJSON writes the externally tagged form used by receipt files:
// {"Halted": n}, {"Paused": n}, "SystemSplit" or "SessionLimit".
func (e ExitCode) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case Halted:
		return json.Marshal(map[string]uint32{"Halted": e.User})
	case Paused:
		return json.Marshal(map[string]uint32{"Paused": e.User})
	case SystemSplit:
		return json.Marshal("SystemSplit")
	default:
		return json.Marshal("SessionLimit")
	}
}

// UnmarshalJSON reads the externally tagged form.
func (e *ExitCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "SystemSplit":
			*e = ExitSystemSplit()
			return nil
		case "SessionLimit":
			*e = ExitSessionLimit()
			return nil
		}
		return fmt.Errorf("%w: %q", ErrInvalidExitCode, s)
	}
	var tagged map[string]uint32
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if user, ok := tagged["Halted"]; ok && len(tagged) == 1 {
		*e = ExitHalted(user)
		return nil
	}
	if user, ok := tagged["Paused"]; ok && len(tagged) == 1 {
		*e = ExitPaused(user)
		return nil
	}
	return ErrInvalidExitCode
}
