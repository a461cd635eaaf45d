package device

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLights_SwitchesEveryLight(t *testing.T) {
	var a, b []bool
	boom := errors.New("boom")
	l := Lights(
		LightFunc(func(on bool) error { a = append(a, on); return nil }),
		nil,
		LightFunc(func(on bool) error { b = append(b, on); return boom }),
	)

	err := l.SetTorch(true)
	require.ErrorIs(t, err, boom)
	require.NoError(t, Lights().SetTorch(false))

	assert.Equal(t, []bool{true}, a)
	assert.Equal(t, []bool{true}, b)
}

func TestHaptics_FansOut(t *testing.T) {
	var got []Intensity
	h := Haptics(
		HapticFunc(func(i Intensity) error { got = append(got, i); return nil }),
		HapticFunc(func(i Intensity) error { got = append(got, i); return nil }),
	)

	require.NoError(t, h.Impact(IntensityMedium))
	assert.Equal(t, []Intensity{IntensityMedium, IntensityMedium}, got)
}

func TestSet_WithDefaults(t *testing.T) {
	s := Set{}.WithDefaults()

	require.NoError(t, s.Light.SetTorch(true))
	require.NoError(t, s.Haptic.Impact(IntensityLight))
	clip, err := s.Sound.Open()
	require.NoError(t, err)
	require.NoError(t, clip.Replay(time.Second))
	require.NoError(t, clip.Stop())
	require.NoError(t, clip.Close())
	require.NoError(t, clip.Close())
}

func TestIntensity_String(t *testing.T) {
	assert.Equal(t, "light", IntensityLight.String())
	assert.Equal(t, "medium", IntensityMedium.String())
	assert.Equal(t, "unknown", Intensity(7).String())
}

func TestPulseFor(t *testing.T) {
	assert.Equal(t, DefaultPulse, pulseFor(0, IntensityLight))
	assert.Equal(t, 2*DefaultPulse, pulseFor(0, IntensityMedium))
	assert.Equal(t, 100*time.Millisecond, pulseFor(50*time.Millisecond, IntensityMedium))
}

func TestToneConfig_Defaults(t *testing.T) {
	c := ToneConfig{}.withDefaults()
	assert.Equal(t, float64(DefaultToneFrequency), c.Frequency)
	assert.Equal(t, DefaultToneVolume, c.Volume)

	c = ToneConfig{Frequency: 600, Volume: 2}.withDefaults()
	assert.Equal(t, 600.0, c.Frequency)
	assert.Equal(t, DefaultToneVolume, c.Volume)
}

func TestSystemClipboard_Copy(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	require.NoError(t, SystemClipboard{}.Copy("... --- ..."))
	assert.Equal(t, "... --- ...", copied)

	clipboardWriteAll = func(string) error { return errors.New("no clipboard utility") }
	err := SystemClipboard{}.Copy("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write to clipboard")
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &WriterNotifier{W: &buf}

	n.Notify(Notice{Title: "No message", Message: "Type something first"})
	n.Notify(Notice{Message: "Copied"})

	assert.Equal(t, "No message: Type something first\nCopied\n", buf.String())
}

func TestDesktopNotifier_BlockingUsesAlert(t *testing.T) {
	origNotify, origAlert := beeepNotify, beeepAlert
	defer func() { beeepNotify, beeepAlert = origNotify, origAlert }()

	var calls []string
	beeepNotify = func(title, message string, _ any) error {
		calls = append(calls, "notify:"+title+":"+message)
		return nil
	}
	beeepAlert = func(title, message string, _ any) error {
		calls = append(calls, "alert:"+title+":"+message)
		return errors.New("no notification daemon")
	}

	d := DesktopNotifier{AppName: "dit"}
	d.Notify(Notice{Title: "Copied", Message: "... --- ..."})
	d.Notify(Notice{Message: "Nothing to play", Blocking: true})

	assert.Equal(t, []string{
		"notify:Copied:... --- ...",
		"alert:dit:Nothing to play",
	}, calls)
}

func TestDesktopNotifier_SetsAppNameOnce(t *testing.T) {
	origNotify, origName := beeepNotify, beeep.AppName
	defer func() { beeepNotify, beeep.AppName = origNotify, origName }()
	beeepNotify = func(string, string, any) error { return nil }

	d := NewDesktopNotifier("dit")
	assert.Equal(t, "dit", beeep.AppName)
	assert.Equal(t, "dit", d.AppName)

	beeep.AppName = "other"
	d.Notify(Notice{Title: "Copied", Message: "."})
	assert.Equal(t, "other", beeep.AppName)

	NewDesktopNotifier("")
	assert.Equal(t, "other", beeep.AppName)
}

func TestNotifiers_FanOut(t *testing.T) {
	var a, b []Notice
	n := Notifiers(
		NotifierFunc(func(n Notice) { a = append(a, n) }),
		nil,
		NotifierFunc(func(n Notice) { b = append(b, n) }),
	)
	n.Notify(Notice{Level: LevelWarning, Message: "hi"})

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "warning", a[0].Level.String())
}
