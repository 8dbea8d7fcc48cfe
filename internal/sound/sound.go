// Package sound plays the alarm that marks the end of an interval
package sound

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/meow/internal/apperr"
	"github.com/ayoisaiah/meow/internal/config"
	"github.com/ayoisaiah/meow/internal/static"
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound %s",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound %s",
	}
)

const (
	// speaker buffer holds a tenth of a second
	bufferSize      = 10
	resampleQuality = 4
)

var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
)

// Alarm plays a short sound through the default audio device.
type Alarm struct {
	buffer *beep.Buffer
	sound  string
	mu     sync.Mutex
}

// NewAlarm returns an alarm for a built-in sound name, a path to an audio
// file, or "off". Nothing is decoded until the first Play.
func NewAlarm(sound string) *Alarm {
	return &Alarm{sound: sound}
}

// Off reports whether the alarm is silenced.
func (a *Alarm) Off() bool {
	return a.sound == "" || a.sound == config.SoundOff
}

// Play starts the alarm and returns without waiting for it to finish.
func (a *Alarm) Play() error {
	if a.Off() {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.buffer == nil {
		buf, err := load(a.sound)
		if err != nil {
			return err
		}

		a.buffer = buf
	}

	rate := a.buffer.Format().SampleRate

	if err := initSpeaker(rate); err != nil {
		return err
	}

	var s beep.Streamer = a.buffer.Streamer(0, a.buffer.Len())
	if rate != speakerRate {
		s = beep.Resample(resampleQuality, rate, speakerRate, s)
	}

	speaker.Play(s)

	return nil
}

// initSpeaker initialises the speaker once, at the rate of the first sound
// played.
func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerRate != 0 {
		return nil
	}

	err := speaker.Init(rate, rate.N(time.Second/bufferSize))
	if err != nil {
		return err
	}

	speakerRate = rate

	return nil
}

// open returns a reader for a built-in sound or a file on disk.
func open(sound string) (io.ReadCloser, string, error) {
	ext := strings.ToLower(filepath.Ext(sound))

	// without extension, treat as a built-in sound
	if ext == "" {
		name := static.SoundFile(sound)

		f, err := static.Files.Open(static.FilePath(name))
		if err != nil {
			return nil, "", errOpenSound.Fmt(sound).Wrap(err)
		}

		return f, filepath.Ext(name), nil
	}

	f, err := os.Open(sound)
	if err != nil {
		return nil, "", errOpenSound.Fmt(sound).Wrap(err)
	}

	return f, ext, nil
}

// load decodes the whole sound into memory so it can be replayed.
func load(sound string) (*beep.Buffer, error) {
	f, ext, err := open(sound)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()

		return nil, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()

		return nil, errDecodeSound.Fmt(sound).Wrap(err)
	}

	buf := beep.NewBuffer(format)
	buf.Append(stream)

	_ = stream.Close()
	_ = f.Close()

	return buf, nil
}
