// Copyright 2025 Poiesic Systems
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


package storage

import (
	"errors"

	"github.com/poiesic/laureate/core"
)

// MarshalPublication serializes a publication to bytes.
func MarshalPublication(record *core.Publication) []byte {
	buf := make([]byte, core.PublicationMUS.Size(*record))
	core.PublicationMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalPublication deserializes a publication from bytes.
func UnmarshalPublication(data []byte) (*core.Publication, error) {
	record, _, err := core.PublicationMUS.Unmarshal(data)
	if err != nil {
		return nil, errors.Join(ErrSerializationFailed, err)
	}
	return &record, nil
}
