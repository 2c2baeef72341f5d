package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/fs"
	"log"
	"strings"
	"testing"
	"testing/fstest"
)

// pcmWAV returns a mono 16-bit PCM file holding n silent frames.
func pcmWAV(rate uint32, n int) []byte {
	data := uint32(n * 2)
	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, 36+data)
	b.WriteString("WAVEfmt ")
	for _, v := range []any{uint32(16), uint16(1), uint16(1), rate, rate * 2, uint16(2), uint16(16)} {
		binary.Write(&b, binary.LittleEndian, v)
	}
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, data)
	b.Write(make([]byte, data))
	return b.Bytes()
}

// countingFS records how many files were opened and closed.
type countingFS struct {
	fs.FS
	opened map[string]int
	closed map[string]int
}

func newCountingFS(files fstest.MapFS) *countingFS {
	return &countingFS{FS: files, opened: map[string]int{}, closed: map[string]int{}}
}

func (c *countingFS) Open(name string) (fs.File, error) {
	f, err := c.FS.Open(name)
	if err != nil {
		return nil, err
	}
	c.opened[name]++
	return &countingFile{File: f, rs: f.(io.ReadSeeker), onClose: func() { c.closed[name]++ }}, nil
}

type countingFile struct {
	fs.File
	rs      io.ReadSeeker
	onClose func()
}

func (f *countingFile) Seek(offset int64, whence int) (int64, error) {
	return f.rs.Seek(offset, whence)
}

func (f *countingFile) Close() error {
	f.onClose()
	return f.File.Close()
}

func testJukebox(t *testing.T) (*Jukebox, *countingFS, *bytes.Buffer) {
	t.Helper()
	fsys := newCountingFS(fstest.MapFS{
		"music/intro.wav":  {Data: pcmWAV(44100, 64)},
		"music/game.wav":   {Data: pcmWAV(22050, 64)},
		"music/broken.wav": {Data: []byte("not a wav file")},
	})
	tracks := map[string]string{
		"intro":  "music/intro.wav",
		"game":   "music/game.wav",
		"broken": "music/broken.wav",
		"gone":   "music/gone.wav",
	}
	var buf bytes.Buffer
	return newJukebox(fsys, tracks, log.New(&buf, "", 0)), fsys, &buf
}

func TestJukeboxReplayIsNoOp(t *testing.T) {
	j, fsys, _ := testJukebox(t)
	j.Play("intro")
	j.Play("intro")

	if j.current != "intro" {
		t.Fatalf("current = %q, want intro", j.current)
	}
	if fsys.opened["music/intro.wav"] != 1 || fsys.closed["music/intro.wav"] != 0 {
		t.Fatalf("intro opened %d closed %d, want 1 and 0",
			fsys.opened["music/intro.wav"], fsys.closed["music/intro.wav"])
	}
	if j.mixer.Len() != 1 {
		t.Fatalf("mixer holds %d streams, want 1", j.mixer.Len())
	}
}

func TestJukeboxSwitchClosesPrevious(t *testing.T) {
	j, fsys, _ := testJukebox(t)
	j.Play("intro")
	j.Play("game")

	if j.current != "game" {
		t.Fatalf("current = %q, want game", j.current)
	}
	if fsys.closed["music/intro.wav"] != 1 {
		t.Fatalf("intro closed %d times, want 1", fsys.closed["music/intro.wav"])
	}
	if fsys.closed["music/game.wav"] != 0 {
		t.Fatal("new track closed while playing")
	}
	if j.mixer.Len() != 1 {
		t.Fatalf("mixer holds %d streams, want 1", j.mixer.Len())
	}
}

func TestJukeboxBadTracksStaySilent(t *testing.T) {
	for _, track := range []string{"nosuch", "gone", "broken"} {
		t.Run(track, func(t *testing.T) {
			j, fsys, buf := testJukebox(t)
			j.Play("intro")
			j.Play(track)

			if j.current != "" || j.ctrl != nil || j.mixer.Len() != 0 {
				t.Fatalf("jukebox not silent: current=%q mixer=%d", j.current, j.mixer.Len())
			}
			if fsys.closed["music/intro.wav"] != 1 {
				t.Fatal("previous track left open")
			}
			if fsys.opened["music/broken.wav"] != fsys.closed["music/broken.wav"] {
				t.Fatalf("broken.wav opened %d closed %d",
					fsys.opened["music/broken.wav"], fsys.closed["music/broken.wav"])
			}
			if !strings.Contains(buf.String(), "audio: ") {
				t.Fatalf("failure not logged: %q", buf.String())
			}
		})
	}
}

func TestJukeboxPlayAfterClose(t *testing.T) {
	j, fsys, _ := testJukebox(t)
	j.Play("intro")
	j.Close()
	j.Close()
	j.Play("game")

	if j.current != "" || j.mixer.Len() != 0 {
		t.Fatalf("played after close: current=%q mixer=%d", j.current, j.mixer.Len())
	}
	if fsys.opened["music/game.wav"] != 0 {
		t.Fatal("closed jukebox opened a file")
	}
	if fsys.closed["music/intro.wav"] != 1 {
		t.Fatalf("intro closed %d times, want 1", fsys.closed["music/intro.wav"])
	}
}

func TestJukeboxStop(t *testing.T) {
	j, fsys, _ := testJukebox(t)
	j.Play("game")
	j.Stop()
	j.Stop()

	if j.current != "" || j.mixer.Len() != 0 || fsys.closed["music/game.wav"] != 1 {
		t.Fatalf("stop left current=%q mixer=%d closed=%d",
			j.current, j.mixer.Len(), fsys.closed["music/game.wav"])
	}
	j.Play("game")
	if j.current != "game" {
		t.Fatal("stopped jukebox cannot replay")
	}
}
