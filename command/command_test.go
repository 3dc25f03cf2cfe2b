package command

import (
	"errors"
	"testing"

	"github.com/automoto/padchat/gamepad"
)

func TestForButton(t *testing.T) {
	tests := []struct {
		ev   gamepad.ButtonRelease
		want string
	}{
		{gamepad.ButtonRelease{Button: gamepad.ButtonA, Duration: 120}, "A"},
		{gamepad.ButtonRelease{Button: gamepad.ButtonA, Duration: 400}, "+A"},
		{gamepad.ButtonRelease{Button: gamepad.ButtonRight, Duration: 399.9}, "RIGHT"},
		{gamepad.ButtonRelease{Button: gamepad.ButtonL3, Duration: 1000}, "+L3"},
	}

	for _, tt := range tests {
		if got := ForButton(tt.ev, 400); got != tt.want {
			t.Errorf("ForButton(%+v): expected %q, got %q", tt.ev, tt.want, got)
		}
	}
}

func TestForDirection(t *testing.T) {
	tests := []struct {
		ev   gamepad.DirectionChange
		want string
	}{
		{gamepad.DirectionChange{Side: gamepad.StickLeft, Bucket: gamepad.BucketTR, Duration: 200}, "MLTR"},
		{gamepad.DirectionChange{Side: gamepad.StickRight, Bucket: gamepad.BucketB, Duration: 450}, "+MRB"},
	}

	for _, tt := range tests {
		if got := ForDirection(tt.ev, 400); got != tt.want {
			t.Errorf("ForDirection(%+v): expected %q, got %q", tt.ev, tt.want, got)
		}
	}
}

func TestForKey(t *testing.T) {
	if got, err := ForKey(12); err != nil || got != "12" {
		t.Errorf("ForKey(12) = %q, %v", got, err)
	}
	if _, err := ForKey(0); err == nil {
		t.Error("expected error for 0")
	}
	if _, err := ForKey(13); err == nil {
		t.Error("expected error for 13")
	}
}

func TestLabels(t *testing.T) {
	if got := ButtonLabel(gamepad.ButtonRelease{Button: gamepad.ButtonStart}); got != "START" {
		t.Errorf("unexpected button label %q", got)
	}
	got := DirectionLabel(gamepad.DirectionChange{Side: gamepad.StickLeft, Bucket: gamepad.BucketTR})
	if got != "L (TR)" {
		t.Errorf("unexpected direction label %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Command
	}{
		{"A", Command{Section: SectionGamepad, Button: gamepad.ButtonA}},
		{"+lb", Command{Section: SectionGamepad, Long: true, Button: gamepad.ButtonLB}},
		{"Down", Command{Section: SectionGamepad, Button: gamepad.ButtonDown}},
		{"mlTr", Command{Section: SectionJoystick, Side: gamepad.StickLeft, Bucket: gamepad.BucketTR}},
		{"+MRB", Command{Section: SectionJoystick, Long: true, Side: gamepad.StickRight, Bucket: gamepad.BucketB}},
		{"7", Command{Section: SectionKeyboard, Digit: 7}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.raw)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %+v, got %+v", tt.raw, tt.want, got)
		}
	}
}

func TestParseRoundTripsCommandString(t *testing.T) {
	for _, raw := range []string{"+A", "START", "MLL", "+MRTL", "12"} {
		c, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if c.String() != raw {
			t.Errorf("expected %q, got %q", raw, c.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, raw := range []string{"", "+", "SELECT", "MX", "MQT", "MLZ", "0", "13", "+5"} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q): expected error", raw)
		}
	}
}

func TestCommandKey(t *testing.T) {
	c, _ := Parse("+MLBR")
	if c.Key() != "BR" {
		t.Errorf("expected BR, got %q", c.Key())
	}
	c, _ = Parse("x")
	if c.Key() != "X" {
		t.Errorf("expected X, got %q", c.Key())
	}
	c, _ = Parse("3")
	if c.Key() != "3" {
		t.Errorf("expected 3, got %q", c.Key())
	}
}

func TestRandomizerRotation(t *testing.T) {
	var r Randomizer
	got := []string{
		r.Apply("MLTR"),
		r.Apply("MLTR"),
		r.Apply("MLTR"),
		r.Apply("MLTR"),
		r.Apply("MLTR"),
	}
	want := []string{"MLTR", "mltr", "Mltr", "mltR", "MLTR"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRandomizerSpecialCases(t *testing.T) {
	var r Randomizer
	r.next = CaseFirst
	if got := r.Apply("A"); got != "A" {
		t.Errorf("single letter with first-case should be upper, got %q", got)
	}
	if got := r.Apply("A"); got != "a" {
		t.Errorf("single letter with last-case should be lower, got %q", got)
	}
	r.next = CaseFirst
	if got := r.Apply("+start"); got != "+Start" {
		t.Errorf("long prefix must be skipped, got %q", got)
	}
	if got := r.Apply("11"); got != "11" {
		t.Errorf("digits pass through, got %q", got)
	}
	if r.next != CaseUpper {
		t.Errorf("digits must advance the rotation, got %d", r.next)
	}
}

func TestRandomizerDigitsShareRotation(t *testing.T) {
	var r Randomizer
	got := []string{
		r.Apply("MLTR"),
		r.Apply("3"),
		r.Apply("MLTR"),
		r.Apply("12"),
		r.Apply("MLTR"),
	}
	want := []string{"MLTR", "3", "Mltr", "12", "MLTR"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) Send(cmd string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, cmd)
	return nil
}

func TestRelayDropsFirst(t *testing.T) {
	s := &recordingSender{}
	r := NewRelay(s, true, false)

	if ok, err := r.Send("A"); ok || err != nil {
		t.Fatalf("first command must be dropped, got %v %v", ok, err)
	}
	if ok, err := r.Send("B"); !ok || err != nil {
		t.Fatalf("second command must be sent, got %v %v", ok, err)
	}
	if len(s.sent) != 1 || s.sent[0] != "B" {
		t.Errorf("unexpected sent %v", s.sent)
	}
	if r.Sent != 1 || r.Dropped != 1 {
		t.Errorf("unexpected counts %d/%d", r.Sent, r.Dropped)
	}
}

func TestRelayRandomizes(t *testing.T) {
	s := &recordingSender{}
	r := NewRelay(s, false, true)
	r.Send("+MLT")
	r.Send("+MLT")
	if len(s.sent) != 2 || s.sent[0] != "+MLT" || s.sent[1] != "+mlt" {
		t.Errorf("unexpected sent %v", s.sent)
	}
}

func TestRelayPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	r := NewRelay(&recordingSender{err: boom}, false, false)
	ok, err := r.Send("A")
	if ok || !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v %v", ok, err)
	}
	if r.Sent != 0 {
		t.Error("failed sends are not counted")
	}
}
