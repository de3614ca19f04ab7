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


// Package index defines the task index abstraction the search pipeline
// queries.
//
// The index stores tasks keyed by content-based IDs and answers property
// filter queries: status, priority, due date, folder, and tags. Filter
// criteria are conjunctive, and an empty filter returns the whole index,
// which is what vague queries with no extracted properties rely on.
//
// The index/badger sub-package provides the production implementation on
// BadgerDB. Serialization uses the MUS format via the serializers in the
// core package.
package index
