package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/multierr"
)

// Instrument renders one hit of a synthesized drum.
type Instrument interface {
	Render(sampleRate int) Buffer
}

// synthInstruments backs every track id when no samples are loaded.
var synthInstruments = map[string]Instrument{
	"kick":  Kick{},
	"snare": Snare{},
	"clap":  Clap{},
	"hat":   HiHat{},
	"clave": Clave{},
	"tom3":  Tom{Pitch: 110},
	"tom2":  Tom{Pitch: 150},
	"tom1":  Tom{Pitch: 200},
}

// SynthKit renders the built-in instruments once.
func SynthKit() Kit {
	kit := make(Kit, len(synthInstruments))
	for id, inst := range synthInstruments {
		kit[id] = inst.Render(SampleRate)
	}
	return kit
}

// LoadKit decodes every file in files from fsys. All failures are collected
// and returned together; the kit is only valid when err is nil.
func LoadKit(fsys fs.FS, files map[string]string) (Kit, error) {
	ids := make([]string, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	kit := make(Kit, len(files))
	var errs error
	for _, id := range ids {
		name := files[id]
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("sample %s: %w", id, err))
			continue
		}
		buf, err := decode(name, data)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("sample %s (%s): %w", id, name, err))
			continue
		}
		kit[id] = buf
	}
	if errs != nil {
		return nil, errs
	}
	return kit, nil
}

// decode picks a decoder by extension. The ebiten decoders resample to
// SampleRate and produce 16-bit stereo which is folded to mono here.
func decode(name string, data []byte) (Buffer, error) {
	var (
		s   io.Reader
		err error
	)
	src := bytes.NewReader(data)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(SampleRate, src)
	case ".wav":
		s, err = wav.DecodeWithSampleRate(SampleRate, src)
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(SampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, err
	}
	if len(pcm) < 4 {
		return nil, errors.New("no audio frames")
	}
	return downmix16(pcm), nil
}

// downmix16 averages interleaved 16-bit LE stereo into a mono Buffer.
func downmix16(pcm []byte) Buffer {
	frames := len(pcm) / 4
	buf := make(Buffer, frames)
	for i := range buf {
		l := int16(uint16(pcm[4*i]) | uint16(pcm[4*i+1])<<8)
		r := int16(uint16(pcm[4*i+2]) | uint16(pcm[4*i+3])<<8)
		buf[i] = (float32(l) + float32(r)) / 2 / 32768
	}
	return buf
}
