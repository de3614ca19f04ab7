package badger

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/wenlzhang/taskchat/core"
)

// Key prefixes for different data types
const (
	taskRecordPrefix = "tskrec"
	taskDuePrefix    = "tskdue"
	taskFolderPrefix = "tskfld"
)

// makeTaskKey generates a key for a task by ID.
func makeTaskKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", taskRecordPrefix, id))
}

// makeTaskDueKey generates a composite key for the due-date index.
// Format: prefix:dueDate:id
func makeTaskDueKey(due time.Time, id core.ID) []byte {
	prefix := taskDuePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16) // 8 bytes for due date + 8 bytes for ID
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(due.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeTaskFolderKey generates a composite key for the folder index.
// Format: prefix:folder:id. The folder component is lowercased so scans
// agree with the matcher's case-insensitive folder comparison.
func makeTaskFolderKey(folder string, id core.ID) []byte {
	prefix := fmt.Sprintf("%s:%s:", taskFolderPrefix, strings.ToLower(folder))
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialTaskFolderKey generates the scan prefix for folder queries.
// No trailing separator: the bare prefix also covers nested folders, and
// the matcher rejects false prefix matches like "workshop" for "work".
func makePartialTaskFolderKey(folder string) []byte {
	return []byte(taskFolderPrefix + ":" + strings.ToLower(folder))
}
