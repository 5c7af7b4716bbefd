// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dsdpb

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/pkg/errors"
)

const (
	fieldTaggerEntities protowire.Number = 1
	fieldTaggerPIDMap   protowire.Number = 2

	fieldMapKey   protowire.Number = 1
	fieldMapValue protowire.Number = 2
)

// TaggerState is the tagger snapshot an agent appends after the last frame of
// a capture.
//
// Only the parts useful for inspecting a capture are decoded: the number of
// tagged entities, and the process to container mapping.
type TaggerState struct {
	// Entities is the number of entries in the entity map.
	Entities int
	// PIDMap maps a process identifier to its container ID.
	PIDMap map[int32]string

	// entities holds raw entity entries for re-encoding. It is only populated
	// by callers building a state to write.
	entities [][]byte
}

// AddRawEntity appends an already-encoded entity map entry.
func (s *TaggerState) AddRawEntity(entry []byte) {
	s.entities = append(s.entities, entry)
	s.Entities = len(s.entities)
}

// Unmarshal decodes b into s.
func (s *TaggerState) Unmarshal(b []byte) error {
	*s = TaggerState{}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "reading tag")
		}
		b = b[n:]

		switch {
		case num == fieldTaggerEntities && typ == protowire.BytesType:
			_, n = protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "entity entry")
			}
			s.Entities++

		case num == fieldTaggerPIDMap && typ == protowire.BytesType:
			var entry []byte
			entry, n = protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "pid map entry")
			}
			pid, cid, err := decodePIDEntry(entry)
			if err != nil {
				return errors.Wrap(err, "pid map entry")
			}
			if s.PIDMap == nil {
				s.PIDMap = make(map[int32]string)
			}
			s.PIDMap[pid] = cid

		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "skipping field %d", num)
			}
		}
		b = b[n:]
	}
	return nil
}

// Marshal encodes s.
func (s *TaggerState) Marshal() []byte {
	var b []byte
	for _, e := range s.entities {
		b = protowire.AppendTag(b, fieldTaggerEntities, protowire.BytesType)
		b = protowire.AppendBytes(b, e)
	}
	for pid, cid := range s.PIDMap {
		var entry []byte
		entry = protowire.AppendTag(entry, fieldMapKey, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(int64(pid)))
		entry = protowire.AppendTag(entry, fieldMapValue, protowire.BytesType)
		entry = protowire.AppendString(entry, cid)

		b = protowire.AppendTag(b, fieldTaggerPIDMap, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

func decodePIDEntry(b []byte) (pid int32, cid string, err error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return 0, "", protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldMapKey && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			pid = int32(v)
		case num == fieldMapValue && typ == protowire.BytesType:
			var v []byte
			v, n = protowire.ConsumeBytes(b)
			cid = string(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return 0, "", protowire.ParseError(n)
		}
		b = b[n:]
	}
	return
}
