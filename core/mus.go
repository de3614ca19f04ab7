// Copyright 2025 The Task Chat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types persisted by the snapshot store.
// Hand-maintained; field order is the wire format and must not change
// without migrating stored snapshots.

var stringSliceMUS = ord.NewSliceSer[string](ord.String)

// IDMUS serializes IDs as varint uint64.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// TaskMUS serializes Task values. Timestamps use Unix micros, matching
// the precision of the index keys.
var TaskMUS = taskMUS{}

type taskMUS struct{}

func (taskMUS) Marshal(t Task, bs []byte) (n int) {
	n = IDMUS.Marshal(t.Id, bs)
	n += ord.String.Marshal(t.Text, bs[n:])
	n += ord.String.Marshal(t.StatusCategory, bs[n:])
	n += varint.Int.Marshal(t.Priority, bs[n:])
	n += raw.TimeUnixMicro.Marshal(t.DueDate, bs[n:])
	n += raw.TimeUnixMicro.Marshal(t.CreatedDate, bs[n:])
	n += raw.TimeUnixMicro.Marshal(t.CompletedDate, bs[n:])
	n += stringSliceMUS.Marshal(t.Tags, bs[n:])
	n += ord.String.Marshal(t.Folder, bs[n:])
	return n
}

func (taskMUS) Unmarshal(bs []byte) (t Task, n int, err error) {
	var n1 int
	if t.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if t.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if t.StatusCategory, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if t.Priority, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if t.DueDate, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if t.CreatedDate, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if t.CompletedDate, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if t.Tags, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if t.Folder, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (taskMUS) Size(t Task) (size int) {
	size = IDMUS.Size(t.Id)
	size += ord.String.Size(t.Text)
	size += ord.String.Size(t.StatusCategory)
	size += varint.Int.Size(t.Priority)
	size += raw.TimeUnixMicro.Size(t.DueDate)
	size += raw.TimeUnixMicro.Size(t.CreatedDate)
	size += raw.TimeUnixMicro.Size(t.CompletedDate)
	size += stringSliceMUS.Size(t.Tags)
	size += ord.String.Size(t.Folder)
	return size
}

func (taskMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	for i := 0; i < 3; i++ {
		if n1, err = raw.TimeUnixMicro.Skip(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}
