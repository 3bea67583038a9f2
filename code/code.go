// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package code

import (
	"bytes"
	"encoding/binary"

	"github.com/lineuve/besu/vm"
)

// Byte layout markers of the versioned container format.
const (
	magicByte0 = 0xEF
	magicByte1 = 0x00

	kindTypes      = 0x01
	kindCode       = 0x02
	kindData       = 0x03
	kindTerminator = 0x00

	// Per-function metadata entry size in the type section; the type
	// section must hold exactly one entry per code section.
	typeEntrySize = 4

	// The highest container version understood by this implementation.
	maxSupportedVersion = 1
)

// Structural defects of a container encoding. A code instance constructed
// from a defective encoding is permanently invalid.
const (
	errTruncatedContainer   = vm.ConstError("truncated container")
	errUnsupportedVersion   = vm.ConstError("unsupported container version")
	errMissingTypeSection   = vm.ConstError("missing type section")
	errMissingCodeSection   = vm.ConstError("missing code section")
	errMissingDataSection   = vm.ConstError("missing data section")
	errMissingTerminator    = vm.ConstError("missing section terminator")
	errInvalidTypeSection   = vm.ConstError("invalid type section size")
	errEmptyCodeSection     = vm.ConstError("zero-length code section")
	errInconsistentBodySize = vm.ConstError("body size does not match section table")
)

// Code is one analyzed unit of contract code: either flat legacy byte code
// or a versioned container. Validity is established once, at construction;
// an encoding that is not a valid instance of the requested format stays
// invalid for the lifetime of the value.
type Code struct {
	raw     []byte
	version int // 0 for legacy code
	valid   bool
	exec    []byte // the executable section; raw itself for legacy code
}

// HasContainerPrefix reports whether the given bytes start with the reserved
// container magic. Such bytes are never valid legacy code.
func HasContainerPrefix(raw []byte) bool {
	return len(raw) >= 2 && raw[0] == magicByte0 && raw[1] == magicByte1
}

// NewLegacy wraps flat byte code. Legacy code carries no structure, so it is
// valid by construction and reports version 0.
func NewLegacy(raw []byte) *Code {
	raw = bytes.Clone(raw)
	return &Code{raw: raw, valid: true, exec: raw}
}

// Parse analyzes the given bytes, classifying them as a versioned container
// if they carry the reserved magic prefix and as legacy code otherwise. The
// input is copied; later changes to the source slice do not affect the
// result.
func Parse(raw []byte) *Code {
	if !HasContainerPrefix(raw) {
		return NewLegacy(raw)
	}
	raw = bytes.Clone(raw)
	version, exec, err := validateContainer(raw)
	if err != nil {
		return &Code{raw: raw, version: version}
	}
	return &Code{raw: raw, version: version, valid: true, exec: exec}
}

// IsValid reports whether this code is a valid instance of its format.
func (c *Code) IsValid() bool {
	return c.valid
}

// Version returns the container format version, 0 for legacy code.
func (c *Code) Version() int {
	return c.version
}

// Raw returns the full encoded code, including container headers.
func (c *Code) Raw() []byte {
	return c.raw
}

// Executable returns the byte sequence to be run by the interpreter: the
// first code section for containers, the full code for legacy byte code.
// It is nil for invalid containers.
func (c *Code) Executable() []byte {
	return c.exec
}

func (c *Code) Length() int {
	return len(c.raw)
}

// validateContainer checks the section structure of a container encoding:
// magic and supported version, a type section, at least one non-empty code
// section, exactly one data section, the terminator, a type section sized to
// the number of code sections, and a body matching the declared sizes. It
// returns the declared version even for defective encodings so that callers
// can report what they rejected.
func validateContainer(raw []byte) (version int, exec []byte, err error) {
	if len(raw) < 3 {
		return 0, nil, errTruncatedContainer
	}
	version = int(raw[2])
	if version == 0 || version > maxSupportedVersion {
		return version, nil, errUnsupportedVersion
	}
	pos := 3

	if len(raw) < pos+3 || raw[pos] != kindTypes {
		return version, nil, errMissingTypeSection
	}
	typesSize := int(binary.BigEndian.Uint16(raw[pos+1 : pos+3]))
	pos += 3
	if typesSize == 0 || typesSize%typeEntrySize != 0 {
		return version, nil, errInvalidTypeSection
	}

	if len(raw) < pos+3 || raw[pos] != kindCode {
		return version, nil, errMissingCodeSection
	}
	numCodeSections := int(binary.BigEndian.Uint16(raw[pos+1 : pos+3]))
	pos += 3
	if numCodeSections == 0 {
		return version, nil, errMissingCodeSection
	}
	if len(raw) < pos+2*numCodeSections {
		return version, nil, errTruncatedContainer
	}
	codeSizes := make([]int, numCodeSections)
	for i := range codeSizes {
		codeSizes[i] = int(binary.BigEndian.Uint16(raw[pos : pos+2]))
		if codeSizes[i] == 0 {
			return version, nil, errEmptyCodeSection
		}
		pos += 2
	}
	if typesSize != typeEntrySize*numCodeSections {
		return version, nil, errInvalidTypeSection
	}

	if len(raw) < pos+3 || raw[pos] != kindData {
		return version, nil, errMissingDataSection
	}
	dataSize := int(binary.BigEndian.Uint16(raw[pos+1 : pos+3]))
	pos += 3

	if len(raw) < pos+1 || raw[pos] != kindTerminator {
		return version, nil, errMissingTerminator
	}
	pos++

	bodySize := typesSize + dataSize
	for _, s := range codeSizes {
		bodySize += s
	}
	if len(raw)-pos != bodySize {
		return version, nil, errInconsistentBodySize
	}

	execStart := pos + typesSize
	return version, raw[execStart : execStart+codeSizes[0]], nil
}
