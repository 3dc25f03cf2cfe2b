package command

import (
	"log"
	"strconv"
	"strings"
)

// CaseStyle is one step of the letter-case rotation.
type CaseStyle int

const (
	CaseUpper CaseStyle = iota
	CaseLower
	CaseFirst // first letter upper, rest lower
	CaseLast  // last letter upper, rest lower
	caseCount
)

// Randomizer rotates the letter case of successive commands so repeated
// commands are not identical messages.
type Randomizer struct {
	next CaseStyle
}

// Apply restyles cmd with the current case and advances the rotation.
// Digit commands pass through unchanged but still advance it.
func (r *Randomizer) Apply(cmd string) string {
	style := r.next
	r.next++
	if r.next == caseCount {
		r.next = CaseUpper
	}
	if n, err := strconv.Atoi(cmd); err == nil && n >= 1 && n <= MaxDigit {
		return cmd
	}
	return restyle(cmd, style)
}

func restyle(cmd string, style CaseStyle) string {
	offset := 0
	if strings.HasPrefix(cmd, LongPrefix) {
		offset = len(LongPrefix)
	}
	if len(cmd) <= offset {
		return cmd
	}
	// Single letters can only alternate.
	if len(cmd) == 1 {
		style %= 2
	}

	switch style {
	case CaseUpper:
		return strings.ToUpper(cmd)
	case CaseFirst:
		return strings.ToUpper(cmd[:offset+1]) + strings.ToLower(cmd[offset+1:])
	case CaseLast:
		return strings.ToLower(cmd[:len(cmd)-1]) + strings.ToUpper(cmd[len(cmd)-1:])
	default:
		return strings.ToLower(cmd)
	}
}

// Sender posts a command somewhere.
type Sender interface {
	Send(cmd string) error
}

// LogSender only logs the commands it is given.
type LogSender struct{}

func (LogSender) Send(cmd string) error {
	log.Printf("[chat] send command=%q", cmd)
	return nil
}

// Relay forwards commands to a Sender, optionally dropping the very first
// one and rotating letter case.
type Relay struct {
	sender    Sender
	dropFirst bool
	randomize bool
	cases     Randomizer

	Sent    int
	Dropped int
}

// NewRelay wraps sender.
func NewRelay(sender Sender, dropFirst, randomize bool) *Relay {
	return &Relay{
		sender:    sender,
		dropFirst: dropFirst,
		randomize: randomize,
	}
}

// Send forwards cmd. It reports whether the command was actually handed to
// the sender.
func (r *Relay) Send(cmd string) (bool, error) {
	if r.dropFirst {
		r.dropFirst = false
		r.Dropped++
		log.Printf("[dispatch] drop first command %q", cmd)
		return false, nil
	}
	if r.randomize {
		cmd = r.cases.Apply(cmd)
	}
	if err := r.sender.Send(cmd); err != nil {
		return false, err
	}
	r.Sent++
	return true, nil
}
