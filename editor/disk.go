package editor

import (
	"log"
	"os"
	"time"
)

// FileChangedMsg tells the editor that the file behind the document may have
// changed outside the editor. Hosts send it from a file watcher.
type FileChangedMsg struct{}

// diskStamp identifies one version of the file on disk.
type diskStamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statFile(path string) diskStamp {
	st, err := os.Stat(path)
	if err != nil {
		return diskStamp{}
	}
	return diskStamp{exists: true, size: st.Size(), modTime: st.ModTime()}
}

func (d diskStamp) same(o diskStamp) bool {
	return d.exists == o.exists && d.size == o.size && d.modTime.Equal(o.modTime)
}

// checkDisk reports a change of the file behind the document once per change.
// Writes made by Save are recorded first and so never reported.
func (m *Model) checkDisk() {
	if m.path == "" {
		return
	}
	st := statFile(m.path)
	if st.same(m.disk) {
		return
	}
	m.disk = st
	if st.exists {
		m.status = m.FileName() + " changed on disk"
	} else {
		m.status = m.FileName() + " removed from disk"
	}
	log.Printf("%s: %s", m.path, m.status)
}
