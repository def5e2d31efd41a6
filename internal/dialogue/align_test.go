package dialogue

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nguyentantai21042004/dramadeck/internal/speaker"
	"github.com/nguyentantai21042004/dramadeck/internal/transcript"
)

func newDirectory(t *testing.T, lines ...string) speaker.Directory {
	t.Helper()
	dir, err := speaker.Load(lines, speaker.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestAlign(t *testing.T) {
	dir := newDirectory(t, "妈妈", "mom", "爸爸", "dad")

	native := []transcript.Turn{
		{Marker: "mom", Lines: []string{"你好。"}},
		{Marker: "dad", Lines: []string{"再见", "明天见"}},
	}
	foreign := []transcript.Turn{
		{Marker: "Mom", Lines: []string{"Hello."}},
		{Marker: "dad", Lines: []string{"Bye"}},
	}

	got, err := Align(native, foreign, dir, AlignOptions{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}

	want := []Turn{
		{
			Speaker: speaker.Name{Native: "妈妈", Foreign: "mom"},
			Native:  []string{"你好。"},
			Foreign: []string{"Hello."},
		},
		{
			Speaker: speaker.Name{Native: "爸爸", Foreign: "dad"},
			Native:  []string{"再见", "明天见"},
			Foreign: []string{"Bye"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Align() = %+v, want %+v", got, want)
	}
}

func TestAlignPairsByPosition(t *testing.T) {
	dir := newDirectory(t, "妈妈", "mom", "爸爸", "dad")

	native := []transcript.Turn{{Marker: "mom", Lines: []string{"你好"}}}
	foreign := []transcript.Turn{{Marker: "dad", Lines: []string{"Hi"}}}

	got, err := Align(native, foreign, dir, AlignOptions{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if want := (speaker.Name{Native: "妈妈", Foreign: "dad"}); got[0].Speaker != want {
		t.Errorf("Speaker = %+v, want %+v", got[0].Speaker, want)
	}

	_, err = Align(native, foreign, dir, AlignOptions{StrictSpeakers: true})
	if !errors.Is(err, ErrSpeakerMismatch) {
		t.Errorf("strict Align() error = %v, want %v", err, ErrSpeakerMismatch)
	}
}

func TestAlignLengthMismatch(t *testing.T) {
	dir := newDirectory(t, "妈妈", "mom")

	native := []transcript.Turn{{Marker: "mom"}, {Marker: "mom"}, {Marker: "mom"}}
	foreign := []transcript.Turn{{Marker: "mom"}, {Marker: "mom"}}

	_, err := Align(native, foreign, dir, AlignOptions{})
	if !errors.Is(err, ErrTranscriptLengthMismatch) {
		t.Errorf("Align() error = %v, want %v", err, ErrTranscriptLengthMismatch)
	}
}

func TestAlignUnknownSpeaker(t *testing.T) {
	dir := newDirectory(t, "妈妈", "mom")

	native := []transcript.Turn{{Marker: "narrator"}}
	foreign := []transcript.Turn{{Marker: "mom"}}

	_, err := Align(native, foreign, dir, AlignOptions{})
	if !errors.Is(err, ErrUnknownSpeaker) {
		t.Errorf("Align() error = %v, want %v", err, ErrUnknownSpeaker)
	}
}

func TestPipelineScenario(t *testing.T) {
	dir := newDirectory(t, "妈妈", "mom")

	native, err := transcript.Segment([]string{"mom", "你好。", "mom", "再见"}, dir)
	if err != nil {
		t.Fatal(err)
	}
	foreign, err := transcript.Segment([]string{"mom", "Hello.", "mom", "Bye"}, dir)
	if err != nil {
		t.Fatal(err)
	}

	turns, err := Align(native, foreign, dir, AlignOptions{})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}

	wantNative := []string{"你好。", "再见。"}
	wantForeign := []string{"Hello. ", "Bye. "}
	for i, turn := range turns {
		balanced, err := Balance(turn.Chunked(NativeRule, ForeignRule))
		if err != nil {
			t.Fatalf("turn %d: Balance() error = %v", i, err)
		}
		if !reflect.DeepEqual(balanced.Native, []string{wantNative[i]}) {
			t.Errorf("turn %d Native = %q, want [%q]", i, balanced.Native, wantNative[i])
		}
		if !reflect.DeepEqual(balanced.Foreign, []string{wantForeign[i]}) {
			t.Errorf("turn %d Foreign = %q, want [%q]", i, balanced.Foreign, wantForeign[i])
		}
	}
}
